package notificationhandler

import (
	notificationstore "hr-recruit-backend/lib/notification/store"
	"hr-recruit-backend/models"
	dbmodels "hr-recruit-backend/models/db"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeNotificationStore struct {
	notificationstore.Provider
	created   []dbmodels.Notification
	createErr error
}

func (f *fakeNotificationStore) Create(rec dbmodels.Notification) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, rec)
	return uuid.NewString(), nil
}

func TestNotify(t *testing.T) {
	userID := uuid.NewString()

	t.Run(`all channels enqueued check`, func(t *testing.T) {
		store := &fakeNotificationStore{}
		handler := impl{store: store}

		handler.Notify(userID, models.GetNotifyScreeningInvite("Go разработчик"))
		require.Len(t, store.created, 3)
		channels := map[models.NotificationChannel]bool{}
		for _, rec := range store.created {
			require.Equal(t, userID, rec.UserID)
			require.Equal(t, models.NotificationStatusPending, rec.Status)
			channels[rec.Channel] = true
		}
		require.True(t, channels[models.NotificationChannelEmail])
		require.True(t, channels[models.NotificationChannelSms])
		require.True(t, channels[models.NotificationChannelInApp])
	})

	t.Run(`store failure is swallowed check`, func(t *testing.T) {
		store := &fakeNotificationStore{createErr: errors.New("БД недоступна")}
		handler := impl{store: store}

		// постановка в очередь не возвращает ошибку бизнес-операции
		require.NotPanics(t, func() {
			handler.Notify(userID, models.GetNotifyScreeningInvite("Go разработчик"))
		})
		require.Empty(t, store.created)
	})
}
