package initializers

import (
	"context"
	s3client "hr-recruit-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() s3client.Provider {
	client, err := s3client.NewClient()
	if err != nil {
		panic(err.Error())
	}

	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
	} else {
		log.Info("S3 клиент успешно инициализирован")
	}
	return client
}
