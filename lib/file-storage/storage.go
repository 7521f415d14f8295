package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"hr-recruit-backend/config"
	"hr-recruit-backend/db"
	filesdbstore "hr-recruit-backend/lib/file-storage/store"
	dbmodels "hr-recruit-backend/models/db"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadResume(ctx context.Context, ownerID, fileName, contentType string, data []byte) (fileID string, err error)
	UploadOfferPdf(ctx context.Context, ownerID, offerID string, data []byte) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) (data []byte, meta *dbmodels.FileMeta, err error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
		store:    filesdbstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstore.Provider
}

func (i impl) UploadResume(ctx context.Context, ownerID, fileName, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	meta := dbmodels.FileMeta{
		OwnerID:     ownerID,
		Name:        fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	fileID, err := i.store.Save(meta)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения данных о файле")
	}
	objectKey := fmt.Sprintf("resume/%v/%v", ownerID, fileID)
	err = i.putObject(ctx, objectKey, contentType, data)
	if err != nil {
		return "", err
	}
	meta.ID = fileID
	meta.ObjectKey = objectKey
	_, err = i.store.Save(meta)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения данных о файле")
	}
	return fileID, nil
}

func (i impl) UploadOfferPdf(ctx context.Context, ownerID, offerID string, data []byte) (string, error) {
	meta := dbmodels.FileMeta{
		OwnerID:     ownerID,
		Name:        fmt.Sprintf("offer_%v.pdf", offerID),
		ContentType: "application/pdf",
		Size:        int64(len(data)),
	}
	fileID, err := i.store.Save(meta)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения данных о файле")
	}
	objectKey := fmt.Sprintf("offer/%v/%v", offerID, fileID)
	err = i.putObject(ctx, objectKey, "application/pdf", data)
	if err != nil {
		return "", err
	}
	meta.ID = fileID
	meta.ObjectKey = objectKey
	_, err = i.store.Save(meta)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения данных о файле")
	}
	return fileID, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileMeta, error) {
	meta, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения данных о файле")
	}
	if meta == nil {
		return nil, nil, errors.New("файл не найден")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, meta.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return data, meta, nil
}

func (i impl) putObject(ctx context.Context, objectKey, contentType string, data []byte) error {
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return nil
}
