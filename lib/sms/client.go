package smsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hr-recruit-backend/config"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendSms(ctx context.Context, phone, text string) error
}

var Instance Provider

func NewProvider() {
	Instance = &impl{
		gatewayURL: config.Conf.Sms.GatewayURL,
		apiKey:     config.Conf.Sms.ApiKey,
		sender:     config.Conf.Sms.Sender,
	}
}

type impl struct {
	gatewayURL string
	apiKey     string
	sender     string
}

type smsRequest struct {
	Sender string `json:"sender"`
	Phone  string `json:"phone"`
	Text   string `json:"text"`
}

type smsResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (i impl) SendSms(ctx context.Context, phone, text string) error {
	logger := log.WithField("recipient", phone)
	if i.gatewayURL == "" || i.apiKey == "" {
		logger.Warn("СМС не отправлено, тк не настроен смс шлюз")
		return nil
	}
	body, err := json.Marshal(smsRequest{
		Sender: i.sender,
		Phone:  phone,
		Text:   text,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации запроса")
	}
	r, err := http.NewRequestWithContext(ctx, "POST", i.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "ошибка создания запроса")
	}
	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("Authorization", "Bearer "+i.apiKey)

	response, err := http.DefaultClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки запроса в смс шлюз")
		return errors.Wrap(err, "ошибка отправки запроса в смс шлюз")
	}
	defer response.Body.Close()
	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "ошибка чтения ответа смс шлюза")
	}
	if response.StatusCode != http.StatusOK {
		logger.
			WithField("response_code", response.StatusCode).
			WithField("response_body", string(respBody)).
			Error("Ошибка отправки смс")
		return errors.Errorf("смс шлюз вернул код %v", response.StatusCode)
	}
	resp := smsResponse{}
	if err = json.Unmarshal(respBody, &resp); err != nil {
		return errors.Wrap(err, "ошибка десериализации ответа смс шлюза")
	}
	if resp.Error != "" {
		return errors.Errorf("ошибка отправки смс: %v", resp.Error)
	}
	logger.Info(fmt.Sprintf("смс отправлено (статус: %v)", resp.Status))
	return nil
}
