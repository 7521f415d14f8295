package dbmodels

import (
	"hr-recruit-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsAllowStatusChange(t *testing.T) {
	t.Run(`allowed transition check`, func(t *testing.T) {
		rec := JobApplication{Status: models.ApplicationStatusApplied}
		require.NoError(t, rec.IsAllowStatusChange(models.ApplicationStatusScreening))
	})

	t.Run(`skip stage check`, func(t *testing.T) {
		rec := JobApplication{Status: models.ApplicationStatusApplied}
		err := rec.IsAllowStatusChange(models.ApplicationStatusOfferSent)
		require.Error(t, err)
	})

	t.Run(`terminal status check`, func(t *testing.T) {
		rec := JobApplication{Status: models.ApplicationStatusHired}
		err := rec.IsAllowStatusChange(models.ApplicationStatusRejected)
		require.Error(t, err)
		require.Contains(t, err.Error(), "финальном статусе")
	})

	t.Run(`unknown status check`, func(t *testing.T) {
		rec := JobApplication{Status: models.ApplicationStatusApplied}
		err := rec.IsAllowStatusChange("paused")
		require.Error(t, err)
	})
}

func TestCanWithdraw(t *testing.T) {
	t.Run(`early stages check`, func(t *testing.T) {
		require.True(t, JobApplication{Status: models.ApplicationStatusApplied}.CanWithdraw())
		require.True(t, JobApplication{Status: models.ApplicationStatusScreening}.CanWithdraw())
	})

	t.Run(`late stages check`, func(t *testing.T) {
		require.False(t, JobApplication{Status: models.ApplicationStatusInterviewScheduled}.CanWithdraw())
		require.False(t, JobApplication{Status: models.ApplicationStatusOfferSent}.CanWithdraw())
		require.False(t, JobApplication{Status: models.ApplicationStatusRejected}.CanWithdraw())
	})
}

func TestCanAcceptApplications(t *testing.T) {
	t.Run(`published job check`, func(t *testing.T) {
		require.True(t, Job{IsPublished: true}.CanAcceptApplications())
		require.False(t, Job{IsPublished: false}.CanAcceptApplications())
	})

	t.Run(`deadline check`, func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)
		require.False(t, Job{IsPublished: true, Deadline: &past}.CanAcceptApplications())
		require.True(t, Job{IsPublished: true, Deadline: &future}.CanAcceptApplications())
	})

	t.Run(`application limit check`, func(t *testing.T) {
		job := Job{IsPublished: true, MaxApplications: 10, ApplicationCount: 10}
		require.False(t, job.CanAcceptApplications())
		job.ApplicationCount = 9
		require.True(t, job.CanAcceptApplications())
	})
}
