package db

import (
	dbmodels "hr-recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationStatusLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationStatusLog")
	}
	if err := DB.AutoMigrate(&dbmodels.ChatSession{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ChatSession")
	}
	if err := DB.AutoMigrate(&dbmodels.ChatMessage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ChatMessage")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Offer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Offer")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.FileMeta{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileMeta")
	}
	// не более одной активной сессии скрининга на отклик
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_active_chat_session ON chat_sessions (application_id) WHERE status = 'active';")
	log.Info("Миграция прошла успешно")
	return nil
}
