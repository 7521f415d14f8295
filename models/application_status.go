package models

type ApplicationStatus string

const (
	ApplicationStatusApplied            ApplicationStatus = "applied"
	ApplicationStatusScreening          ApplicationStatus = "screening"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusInterviewCompleted ApplicationStatus = "interview_completed"
	ApplicationStatusOfferSent          ApplicationStatus = "offer_sent"
	ApplicationStatusOfferAccepted      ApplicationStatus = "offer_accepted"
	ApplicationStatusOfferRejected      ApplicationStatus = "offer_rejected"
	ApplicationStatusHired              ApplicationStatus = "hired"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn          ApplicationStatus = "withdrawn"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:            "Отклик получен",
	ApplicationStatusScreening:          "ИИ-скрининг",
	ApplicationStatusInterviewScheduled: "Назначено интервью",
	ApplicationStatusInterviewCompleted: "Интервью проведено",
	ApplicationStatusOfferSent:          "Оффер отправлен",
	ApplicationStatusOfferAccepted:      "Оффер принят",
	ApplicationStatusOfferRejected:      "Оффер отклонен",
	ApplicationStatusHired:              "Принят на работу",
	ApplicationStatusRejected:           "Отклонен",
	ApplicationStatusWithdrawn:          "Отозван кандидатом",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// закрытая таблица переходов воронки, любой переход вне таблицы запрещен
var applicationStatusFlow = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:            {ApplicationStatusScreening, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusScreening:          {ApplicationStatusInterviewScheduled, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusInterviewScheduled: {ApplicationStatusInterviewCompleted, ApplicationStatusRejected},
	ApplicationStatusInterviewCompleted: {ApplicationStatusOfferSent, ApplicationStatusRejected},
	ApplicationStatusOfferSent:          {ApplicationStatusOfferAccepted, ApplicationStatusOfferRejected, ApplicationStatusRejected},
	ApplicationStatusOfferAccepted:      {ApplicationStatusHired},
	ApplicationStatusOfferRejected:      {},
	ApplicationStatusHired:              {},
	ApplicationStatusRejected:           {},
	ApplicationStatusWithdrawn:          {},
}

func (s ApplicationStatus) IsKnown() bool {
	_, exist := applicationStatusFlow[s]
	return exist
}

func (s ApplicationStatus) IsTerminal() bool {
	next, exist := applicationStatusFlow[s]
	return exist && len(next) == 0
}

// CanTransit проверяет допустимость перехода по таблице воронки
func (s ApplicationStatus) CanTransit(newStatus ApplicationStatus) bool {
	for _, allowed := range applicationStatusFlow[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// ApplicationStatusList упорядоченный список статусов воронки для аналитики
var ApplicationStatusList = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusInterviewCompleted,
	ApplicationStatusOfferSent,
	ApplicationStatusOfferAccepted,
	ApplicationStatusOfferRejected,
	ApplicationStatusHired,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}
