package yagptclient

import (
	"context"
	"hr-recruit-backend/models"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

type Message struct {
	Role models.ChatRole
	Text string
}

type Provider interface {
	Chat(ctx context.Context, messages []Message) (reply string, err error)
	GenerateByPromtAndText(ctx context.Context, promt, text string) (generatedText string, err error)
}

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
	maxTokens int
}

func NewClient(apiKey, catalogID string, maxTokens int) Provider {
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithAPIKey(apiKey),
		catalogID: catalogID,
		maxTokens: maxTokens,
	}
}

func (i impl) Chat(ctx context.Context, messages []Message) (string, error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   i.maxTokens,
		},
		Messages: buildGptMessages(messages),
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "Ошибка при отправке запроса в API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("API YandexGPT вернул пустой ответ")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}

func (i impl) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	return i.Chat(ctx, []Message{
		{Role: models.ChatRoleSystem, Text: promt},
		{Role: models.ChatRoleCandidate, Text: text},
	})
}

// тип роли в библиотеке не экспортируется, доступны только готовые значения
func buildGptMessages(messages []Message) []yandexgptclient.YandexGPTMessage {
	gptMessages := make([]yandexgptclient.YandexGPTMessage, 0, len(messages))
	for _, msg := range messages {
		gptMessage := yandexgptclient.YandexGPTMessage{Text: msg.Text}
		switch msg.Role {
		case models.ChatRoleSystem:
			gptMessage.Role = yandexgptclient.YandexGPTMessageRoleSystem
		case models.ChatRoleAssistant:
			gptMessage.Role = yandexgptclient.YandexGPTMessageRoleAssistant
		default:
			gptMessage.Role = yandexgptclient.YandexGPTMessageRoleUser
		}
		gptMessages = append(gptMessages, gptMessage)
	}
	return gptMessages
}
