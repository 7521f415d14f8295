package dbmodels

import (
	"hr-recruit-backend/models"
	"time"
)

// Notification очередь уведомлений, отправка выполняется фоновым воркером
type Notification struct {
	BaseModel
	UserID  string `gorm:"type:varchar(36);index"`
	User    *User  `gorm:"foreignKey:UserID"`
	Channel models.NotificationChannel `gorm:"type:varchar(20);index"`
	Code    models.NotifyEventCode     `gorm:"type:varchar(100)"`
	Title   string                     `gorm:"type:varchar(255)"`
	Msg     string

	Status   models.NotificationStatus `gorm:"type:varchar(20);index"`
	Attempts int
	SentAt   *time.Time
	IsRead   bool
}
