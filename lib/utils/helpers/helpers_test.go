package helpers

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFormatRuDate(t *testing.T) {
	t.Run(`format check`, func(t *testing.T) {
		date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		require.Equal(t, "1 марта 2026 г.", FormatRuDate(date))
	})
}

func TestUpdateResult(t *testing.T) {
	t.Run(`db error wins over rows affected check`, func(t *testing.T) {
		dbErr := errors.New("соединение разорвано")
		err := UpdateResult(&gorm.DB{Error: dbErr, RowsAffected: 0})
		require.ErrorIs(t, err, dbErr)
	})

	t.Run(`no rows means not found check`, func(t *testing.T) {
		err := UpdateResult(&gorm.DB{RowsAffected: 0})
		require.EqualError(t, err, "запись не найдена")
	})

	t.Run(`success check`, func(t *testing.T) {
		require.NoError(t, UpdateResult(&gorm.DB{RowsAffected: 1}))
	})
}

func TestTruncateString(t *testing.T) {
	t.Run(`short string check`, func(t *testing.T) {
		require.Equal(t, "тест", TruncateString("тест", 10))
	})

	t.Run(`truncate by runes check`, func(t *testing.T) {
		require.Equal(t, "тес", TruncateString("тестирование", 3))
	})
}
