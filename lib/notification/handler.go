package notificationhandler

import (
	"hr-recruit-backend/db"
	notificationstore "hr-recruit-backend/lib/notification/store"
	connectionhub "hr-recruit-backend/lib/ws/hub/connection-hub"
	"hr-recruit-backend/models"
	apimodels "hr-recruit-backend/models/api"
	notificationapimodels "hr-recruit-backend/models/api/notification"
	dbmodels "hr-recruit-backend/models/db"
	wsmodels "hr-recruit-backend/models/ws"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Notify(userID string, data models.NotificationData)
	List(userID string, onlyUnread bool, pagination apimodels.Pagination) (list []notificationapimodels.NotificationView, rowCount int64, err error)
	MarkRead(userID string, ids []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationstore.Provider
}

// Notify ставит уведомление в очередь по всем каналам, ошибки не прерывают бизнес-операцию
func (i impl) Notify(userID string, data models.NotificationData) {
	logger := log.
		WithField("user_id", userID).
		WithField("notify_code", data.Code)
	channels := []models.NotificationChannel{
		models.NotificationChannelInApp,
		models.NotificationChannelEmail,
		models.NotificationChannelSms,
	}
	for _, channel := range channels {
		rec := dbmodels.Notification{
			UserID:  userID,
			Channel: channel,
			Code:    data.Code,
			Title:   data.Title,
			Msg:     data.Msg,
			Status:  models.NotificationStatusPending,
		}
		id, err := i.store.Create(rec)
		if err != nil {
			logger.
				WithField("channel", channel).
				WithError(err).
				Error("ошибка постановки уведомления в очередь")
			continue
		}
		if channel == models.NotificationChannelInApp && connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
			connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
				ToUserID: userID,
				Time:     time.Now().Format("02.01.2006 15:04:05"),
				Code:     string(data.Code),
				Title:    data.Title,
				Msg:      data.Msg,
			})
			if err = i.store.SetSent(id); err != nil {
				logger.WithError(err).Error("ошибка обновления статуса уведомления")
			}
		}
	}
}

func (i impl) List(userID string, onlyUnread bool, pagination apimodels.Pagination) ([]notificationapimodels.NotificationView, int64, error) {
	recList, rowCount, err := i.store.ListByUser(userID, onlyUnread, pagination)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка уведомлений")
	}
	list := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, notificationapimodels.NotificationConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) MarkRead(userID string, ids []string) error {
	err := i.store.MarkRead(userID, ids)
	if err != nil {
		return errors.Wrap(err, "ошибка отметки уведомлений прочитанными")
	}
	return nil
}
