package models

import "fmt"

type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSms   NotificationChannel = "sms"
	NotificationChannelInApp NotificationChannel = "in_app"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

type NotifyEventCode string

const (
	NotifyApplicationReceived  NotifyEventCode = "NotifyApplicationReceived"
	NotifyStatusChanged        NotifyEventCode = "NotifyStatusChanged"
	NotifyScreeningInvite      NotifyEventCode = "NotifyScreeningInvite"
	NotifyScreeningCompleted   NotifyEventCode = "NotifyScreeningCompleted"
	NotifyInterviewScheduled   NotifyEventCode = "NotifyInterviewScheduled"
	NotifyInterviewCancelled   NotifyEventCode = "NotifyInterviewCancelled"
	NotifyOfferSent            NotifyEventCode = "NotifyOfferSent"
	NotifyOfferResponse        NotifyEventCode = "NotifyOfferResponse"
	NotifyApplicationRejected  NotifyEventCode = "NotifyApplicationRejected"
	NotifyApplicationWithdrawn NotifyEventCode = "NotifyApplicationWithdrawn"
)

type NotifyTpl struct {
	Name  string
	Title string
	Msg   string
}

var NotifyCodeMap = map[NotifyEventCode]NotifyTpl{
	NotifyApplicationReceived:  {Name: "Новый отклик по вакансии", Title: "Новый отклик на вакансию", Msg: "На вакансию «%v» пришёл новый отклик от кандидата %v."},
	NotifyStatusChanged:        {Name: "Изменение статуса отклика", Title: "Статус отклика изменён", Msg: "Статус вашего отклика на вакансию «%v» изменён: %v."},
	NotifyScreeningInvite:      {Name: "Приглашение на ИИ-скрининг", Title: "Приглашение на скрининг", Msg: "По вашему отклику на вакансию «%v» доступен ИИ-скрининг. Пройдите короткое интервью в личном кабинете."},
	NotifyScreeningCompleted:   {Name: "ИИ-скрининг завершён", Title: "Скрининг кандидата завершён", Msg: "Кандидат %v завершил ИИ-скрининг по вакансии «%v». Оценка: %v."},
	NotifyInterviewScheduled:   {Name: "Назначено интервью", Title: "Назначено интервью", Msg: "По вакансии «%v» назначено интервью на %v. Ссылка для подключения: %v."},
	NotifyInterviewCancelled:   {Name: "Интервью отменено", Title: "Интервью отменено", Msg: "Интервью по вакансии «%v», назначенное на %v, отменено."},
	NotifyOfferSent:            {Name: "Получен оффер", Title: "Вам направлен оффер", Msg: "По вакансии «%v» вам направлен оффер. Ознакомьтесь с условиями в личном кабинете."},
	NotifyOfferResponse:        {Name: "Ответ кандидата по офферу", Title: "Ответ по офферу", Msg: "Кандидат %v дал ответ по офферу на вакансию «%v»: %v."},
	NotifyApplicationRejected:  {Name: "Отклик отклонён", Title: "Отклик отклонён", Msg: "К сожалению, по вашему отклику на вакансию «%v» принято отрицательное решение."},
	NotifyApplicationWithdrawn: {Name: "Кандидат отозвал отклик", Title: "Отклик отозван", Msg: "Кандидат %v отозвал свой отклик на вакансию «%v»."},
}

type NotificationData struct {
	Code  NotifyEventCode
	Title string
	Msg   string
}

func GetNotifyApplicationReceived(jobName, candidateFullName string) NotificationData {
	code := NotifyApplicationReceived
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName, candidateFullName),
	}
}

func GetNotifyStatusChanged(jobName string, status ApplicationStatus) NotificationData {
	code := NotifyStatusChanged
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName, status.ToHuman()),
	}
}

func GetNotifyScreeningInvite(jobName string) NotificationData {
	code := NotifyScreeningInvite
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName),
	}
}

func GetNotifyScreeningCompleted(candidateFullName, jobName string, score float64) NotificationData {
	code := NotifyScreeningCompleted
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, candidateFullName, jobName, fmt.Sprintf("%.1f", score)),
	}
}

func GetNotifyInterviewScheduled(jobName, dateTime, meetingLink string) NotificationData {
	code := NotifyInterviewScheduled
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName, dateTime, meetingLink),
	}
}

func GetNotifyInterviewCancelled(jobName, dateTime string) NotificationData {
	code := NotifyInterviewCancelled
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName, dateTime),
	}
}

func GetNotifyOfferSent(jobName string) NotificationData {
	code := NotifyOfferSent
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName),
	}
}

func GetNotifyOfferResponse(candidateFullName, jobName string, status OfferStatus) NotificationData {
	code := NotifyOfferResponse
	answer := "отклонён"
	if status == OfferStatusAccepted {
		answer = "принят"
	}
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, candidateFullName, jobName, answer),
	}
}

func GetNotifyApplicationRejected(jobName string) NotificationData {
	code := NotifyApplicationRejected
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, jobName),
	}
}

func GetNotifyApplicationWithdrawn(candidateFullName, jobName string) NotificationData {
	code := NotifyApplicationWithdrawn
	return NotificationData{
		Code:  code,
		Title: NotifyCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotifyCodeMap[code].Msg, candidateFullName, jobName),
	}
}
