package notificationworker

import (
	"context"
	"hr-recruit-backend/config"
	"hr-recruit-backend/db"
	notificationstore "hr-recruit-backend/lib/notification/store"
	smsclient "hr-recruit-backend/lib/sms"
	"hr-recruit-backend/lib/smtp"
	baseworker "hr-recruit-backend/lib/utils/base-worker"
	"hr-recruit-backend/lib/utils/helpers"
	"hr-recruit-backend/models"
	dbmodels "hr-recruit-backend/models/db"
	"time"
)

const batchSize = 50

type workerImpl struct {
	*baseworker.BaseImpl
	store       notificationstore.Provider
	maxAttempts int
}

// StartWorker фоновая отправка почтовых и смс уведомлений из очереди
func StartWorker(ctx context.Context) {
	period := time.Duration(config.Conf.Notify.WorkerPeriodSec) * time.Second
	worker := workerImpl{
		BaseImpl:    baseworker.NewInstance("NotificationDispatch", period, period),
		store:       notificationstore.NewInstance(db.DB),
		maxAttempts: config.Conf.Notify.MaxAttempts,
	}
	go worker.Run(ctx, worker.dispatch)
}

func (i workerImpl) dispatch(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListPending([]models.NotificationChannel{
		models.NotificationChannelEmail,
		models.NotificationChannelSms,
	}, batchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка получения очереди уведомлений")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		i.send(ctx, rec)
	}
}

func (i workerImpl) send(ctx context.Context, rec dbmodels.Notification) {
	logger := i.GetLogger().
		WithField("notification_id", rec.ID).
		WithField("channel", rec.Channel)
	if rec.User == nil {
		logger.Error("у уведомления не указан получатель")
		if err := i.store.SetFailed(rec.ID, rec.Attempts+1, true); err != nil {
			logger.WithError(err).Error("ошибка обновления статуса уведомления")
		}
		return
	}
	var err error
	switch rec.Channel {
	case models.NotificationChannelEmail:
		err = smtp.Instance.SendEMail(models.SystemUser, rec.User.Email, rec.Msg, rec.Title)
	case models.NotificationChannelSms:
		if rec.User.PhoneNumber == "" {
			// смс канал недоступен без номера телефона
			if setErr := i.store.SetSent(rec.ID); setErr != nil {
				logger.WithError(setErr).Error("ошибка обновления статуса уведомления")
			}
			return
		}
		err = smsclient.Instance.SendSms(ctx, rec.User.PhoneNumber, rec.Msg)
	default:
		logger.Error("неизвестный канал уведомления")
		return
	}
	if err != nil {
		attempts := rec.Attempts + 1
		logger.
			WithField("attempts", attempts).
			WithError(err).
			Error("ошибка отправки уведомления")
		if setErr := i.store.SetFailed(rec.ID, attempts, attempts >= i.maxAttempts); setErr != nil {
			logger.WithError(setErr).Error("ошибка обновления статуса уведомления")
		}
		return
	}
	if err = i.store.SetSent(rec.ID); err != nil {
		logger.WithError(err).Error("ошибка обновления статуса уведомления")
	}
}
