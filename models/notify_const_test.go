package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifyTemplates(t *testing.T) {
	t.Run(`params render check`, func(t *testing.T) {
		data := GetNotifyApplicationReceived("Go разработчик", "Иванов Иван")
		require.Equal(t, NotifyApplicationReceived, data.Code)
		require.Contains(t, data.Msg, "Go разработчик")
		require.Contains(t, data.Msg, "Иванов Иван")
		require.NotContains(t, data.Msg, "%v")
	})

	t.Run(`status change uses human name check`, func(t *testing.T) {
		data := GetNotifyStatusChanged("Go разработчик", ApplicationStatusInterviewScheduled)
		require.Contains(t, data.Msg, "Назначено интервью")
	})

	t.Run(`screening score format check`, func(t *testing.T) {
		data := GetNotifyScreeningCompleted("Иванов Иван", "Go разработчик", 82.5)
		require.Contains(t, data.Msg, "82.5")
	})

	t.Run(`offer response wording check`, func(t *testing.T) {
		accepted := GetNotifyOfferResponse("Иванов Иван", "Go разработчик", OfferStatusAccepted)
		require.Contains(t, accepted.Msg, "принят")
		rejected := GetNotifyOfferResponse("Иванов Иван", "Go разработчик", OfferStatusRejected)
		require.Contains(t, rejected.Msg, "отклонён")
	})

	t.Run(`every code has template check`, func(t *testing.T) {
		codes := []NotifyEventCode{
			NotifyApplicationReceived,
			NotifyStatusChanged,
			NotifyScreeningInvite,
			NotifyScreeningCompleted,
			NotifyInterviewScheduled,
			NotifyInterviewCancelled,
			NotifyOfferSent,
			NotifyOfferResponse,
			NotifyApplicationRejected,
			NotifyApplicationWithdrawn,
		}
		for _, code := range codes {
			tpl, exist := NotifyCodeMap[code]
			require.True(t, exist, "код %v", code)
			require.NotEmpty(t, tpl.Title)
			require.NotEmpty(t, tpl.Msg)
		}
	})
}
