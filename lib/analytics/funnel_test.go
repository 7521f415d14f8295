package analytics

import (
	"hr-recruit-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFunnel(t *testing.T) {
	t.Run(`conversion check`, func(t *testing.T) {
		reached := map[models.ApplicationStatus]int64{
			models.ApplicationStatusScreening:          50,
			models.ApplicationStatusInterviewScheduled: 20,
			models.ApplicationStatusInterviewCompleted: 18,
			models.ApplicationStatusOfferSent:          5,
			models.ApplicationStatusOfferAccepted:      4,
			models.ApplicationStatusHired:              4,
		}
		stages := buildFunnel(100, reached)
		require.Len(t, stages, 7)
		require.Equal(t, int64(100), stages[0].Count)
		require.Equal(t, 0.5, stages[1].Conversion)
		require.Equal(t, 0.4, stages[2].Conversion)
		require.Equal(t, int64(4), stages[6].Count)
		require.Equal(t, 1.0, stages[6].Conversion)
	})

	t.Run(`empty funnel check`, func(t *testing.T) {
		stages := buildFunnel(0, map[models.ApplicationStatus]int64{})
		require.Len(t, stages, 7)
		for _, stage := range stages {
			require.Equal(t, int64(0), stage.Count)
			require.Equal(t, 0.0, stage.Conversion)
		}
	})
}
