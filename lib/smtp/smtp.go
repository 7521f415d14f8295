package smtp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
	SendEMailWithAttachment(to, message, subject, attachName string, attachData []byte) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.WithField("sender", from)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	sendTo := []string{
		to,
	}
	// Authentication.
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: HR Recruit - %s\n%s\r\n Отправитель: %s\r\n %s\r\n", subject, mimeHeaders, from, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

func (i impl) SendEMailWithAttachment(to, message, subject, attachName string, attachData []byte) error {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("Письмо с вложением не отправлено, тк не настроен smtp клиент")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", i.user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("HR Recruit - %s", subject))
	m.SetBody("text/plain", message)
	m.Attach(attachName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachData)
		return err
	}))

	port, err := strconv.Atoi(i.port)
	if err != nil {
		return err
	}
	d := gomail.NewDialer(i.host, port, i.user, i.password)
	if err := d.DialAndSend(m); err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения с вложением")
		return err
	}
	logger.Info("письмо с вложением отправлено")
	return nil
}
