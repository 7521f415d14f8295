package models

type EmploymentType string

const (
	EmploymentFull       EmploymentType = "full_time"
	EmploymentPart       EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

var employmentHumanName = map[EmploymentType]string{
	EmploymentFull:       "Полная занятость",
	EmploymentPart:       "Частичная занятость",
	EmploymentContract:   "Контракт",
	EmploymentInternship: "Стажировка",
}

func (e EmploymentType) ToHuman() string {
	if human, exist := employmentHumanName[e]; exist {
		return human
	}
	return string(e)
}

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMiddle ExperienceLevel = "middle"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

type WorkLocation string

const (
	WorkLocationOffice WorkLocation = "office"
	WorkLocationRemote WorkLocation = "remote"
	WorkLocationHybrid WorkLocation = "hybrid"
)

type InterviewType string

const (
	InterviewTypePhone     InterviewType = "phone"
	InterviewTypeVideo     InterviewType = "video"
	InterviewTypeOnsite    InterviewType = "onsite"
	InterviewTypeTechnical InterviewType = "technical"
)

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

type OfferStatus string

const (
	OfferStatusDraft    OfferStatus = "draft"
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

// IsResponded оффер получил финальный ответ кандидата
func (s OfferStatus) IsResponded() bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected
}

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusError     SessionStatus = "error"
)

type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleCandidate ChatRole = "candidate"
)
