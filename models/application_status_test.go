package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatusFlow(t *testing.T) {
	t.Run(`allowed transitions check`, func(t *testing.T) {
		cases := []struct {
			from ApplicationStatus
			to   ApplicationStatus
		}{
			{ApplicationStatusApplied, ApplicationStatusScreening},
			{ApplicationStatusApplied, ApplicationStatusWithdrawn},
			{ApplicationStatusScreening, ApplicationStatusInterviewScheduled},
			{ApplicationStatusScreening, ApplicationStatusWithdrawn},
			{ApplicationStatusInterviewScheduled, ApplicationStatusInterviewCompleted},
			{ApplicationStatusInterviewCompleted, ApplicationStatusOfferSent},
			{ApplicationStatusOfferSent, ApplicationStatusOfferAccepted},
			{ApplicationStatusOfferSent, ApplicationStatusOfferRejected},
			{ApplicationStatusOfferAccepted, ApplicationStatusHired},
		}
		for _, c := range cases {
			require.Equal(t, true, c.from.CanTransit(c.to), "переход %v -> %v должен быть разрешен", c.from, c.to)
		}
	})

	t.Run(`rejected reachable from any non-terminal status check`, func(t *testing.T) {
		for _, status := range ApplicationStatusList {
			if status.IsTerminal() || status == ApplicationStatusOfferAccepted {
				continue
			}
			require.Equal(t, true, status.CanTransit(ApplicationStatusRejected), "статус %v", status)
		}
	})

	t.Run(`terminal statuses have no transitions check`, func(t *testing.T) {
		terminals := []ApplicationStatus{
			ApplicationStatusHired,
			ApplicationStatusRejected,
			ApplicationStatusOfferRejected,
			ApplicationStatusWithdrawn,
		}
		for _, status := range terminals {
			require.Equal(t, true, status.IsTerminal())
			for _, next := range ApplicationStatusList {
				require.Equal(t, false, status.CanTransit(next), "переход %v -> %v должен быть запрещен", status, next)
			}
		}
	})

	t.Run(`forbidden transitions check`, func(t *testing.T) {
		cases := []struct {
			from ApplicationStatus
			to   ApplicationStatus
		}{
			{ApplicationStatusApplied, ApplicationStatusOfferSent},
			{ApplicationStatusApplied, ApplicationStatusApplied},
			{ApplicationStatusScreening, ApplicationStatusApplied},
			{ApplicationStatusInterviewScheduled, ApplicationStatusWithdrawn},
			{ApplicationStatusOfferSent, ApplicationStatusHired},
			{ApplicationStatusOfferAccepted, ApplicationStatusRejected},
			{ApplicationStatusHired, ApplicationStatusRejected},
		}
		for _, c := range cases {
			require.Equal(t, false, c.from.CanTransit(c.to), "переход %v -> %v должен быть запрещен", c.from, c.to)
		}
	})

	t.Run(`unknown status check`, func(t *testing.T) {
		unknown := ApplicationStatus("on_hold")
		require.Equal(t, false, unknown.IsKnown())
		require.Equal(t, false, unknown.CanTransit(ApplicationStatusRejected))
		require.Equal(t, false, ApplicationStatusApplied.CanTransit(unknown))
	})
}
