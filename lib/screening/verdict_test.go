package screeninghandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	t.Run(`plain json check`, func(t *testing.T) {
		raw := `{"score": 72.5, "summary": "Сильный кандидат", "recommendation": "Пригласить на интервью", "strengths": ["опыт с Go"], "red_flags": []}`
		verdict, err := parseVerdict(raw)
		require.Nil(t, err)
		require.Equal(t, 72.5, verdict.Score)
		require.Equal(t, "Сильный кандидат", verdict.Summary)
		require.Equal(t, []string{"опыт с Go"}, verdict.Strengths)
	})

	t.Run(`json in markdown block check`, func(t *testing.T) {
		raw := "Вот заключение:\n```json\n{\"score\": 40, \"summary\": \"Мало опыта\", \"recommendation\": \"Отказать\"}\n```"
		verdict, err := parseVerdict(raw)
		require.Nil(t, err)
		require.Equal(t, float64(40), verdict.Score)
		require.Equal(t, "Мало опыта", verdict.Summary)
	})

	t.Run(`score clamp check`, func(t *testing.T) {
		verdict, err := parseVerdict(`{"score": 150, "summary": "x"}`)
		require.Nil(t, err)
		require.Equal(t, float64(100), verdict.Score)

		verdict, err = parseVerdict(`{"score": -10, "summary": "x"}`)
		require.Nil(t, err)
		require.Equal(t, float64(0), verdict.Score)
	})

	t.Run(`no json check`, func(t *testing.T) {
		_, err := parseVerdict("модель вернула просто текст")
		require.NotNil(t, err)
	})
}
