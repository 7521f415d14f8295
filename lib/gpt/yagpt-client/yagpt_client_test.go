package yagptclient

import (
	"hr-recruit-backend/models"
	"testing"

	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	"github.com/stretchr/testify/require"
)

func TestBuildGptMessages(t *testing.T) {
	t.Run(`role mapping check`, func(t *testing.T) {
		history := []Message{
			{Role: models.ChatRoleSystem, Text: "инструкция"},
			{Role: models.ChatRoleAssistant, Text: "вопрос"},
			{Role: models.ChatRoleCandidate, Text: "ответ"},
		}
		gptMessages := buildGptMessages(history)
		require.Len(t, gptMessages, 3)
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleSystem, gptMessages[0].Role)
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleAssistant, gptMessages[1].Role)
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleUser, gptMessages[2].Role)
		require.Equal(t, "инструкция", gptMessages[0].Text)
	})

	t.Run(`unknown role goes to user check`, func(t *testing.T) {
		gptMessages := buildGptMessages([]Message{{Role: models.ChatRole("tool"), Text: "x"}})
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleUser, gptMessages[0].Role)
	})
}
