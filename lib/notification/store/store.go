package notificationstore

import (
	"hr-recruit-backend/models"
	apimodels "hr-recruit-backend/models/api"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	ListPending(channels []models.NotificationChannel, limit int) ([]dbmodels.Notification, error)
	SetSent(id string) error
	SetFailed(id string, attempts int, final bool) error
	ListByUser(userID string, onlyUnread bool, pagination apimodels.Pagination) (list []dbmodels.Notification, rowCount int64, err error)
	ListUnsentInApp(userID string) ([]dbmodels.Notification, error)
	MarkRead(userID string, ids []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListPending(channels []models.NotificationChannel, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("status = ?", models.NotificationStatusPending).
		Where("channel in (?)", channels).
		Order("created_at").
		Limit(limit).
		Preload("User").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) SetSent(id string) error {
	now := time.Now()
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  models.NotificationStatusSent,
			"sent_at": &now,
		}).
		Error
}

func (i impl) SetFailed(id string, attempts int, final bool) error {
	updMap := map[string]interface{}{
		"attempts": attempts,
	}
	if final {
		updMap["status"] = models.NotificationStatusFailed
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByUser(userID string, onlyUnread bool, pagination apimodels.Pagination) (list []dbmodels.Notification, rowCount int64, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("channel = ?", models.NotificationChannelInApp)
	if onlyUnread {
		tx.Where("is_read = false")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListUnsentInApp(userID string) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("channel = ?", models.NotificationChannelInApp).
		Where("status = ?", models.NotificationStatusPending).
		Order("created_at").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(userID string, ids []string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("id in (?)", ids).
		Update("is_read", true).
		Error
}
