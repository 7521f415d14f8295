package notificationapimodels

import (
	apimodels "hr-recruit-backend/models/api"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ListFilter struct {
	OnlyUnread bool `json:"only_unread"`
	apimodels.Pagination
}

type NotificationView struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Msg       string    `json:"msg"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Code:      string(rec.Code),
		Title:     rec.Title,
		Msg:       rec.Msg,
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt,
	}
}

type MarkReadRequest struct {
	IDs []string `json:"ids"`
}

func (r MarkReadRequest) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("не указаны идентификаторы уведомлений")
	}
	return nil
}
