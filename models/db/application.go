package dbmodels

import (
	"hr-recruit-backend/models"
	apimodels "hr-recruit-backend/models/api"
	"time"

	"github.com/pkg/errors"
)

type JobApplication struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);index;uniqueIndex:idx_job_candidate"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	CandidateID string `gorm:"type:varchar(36);index;uniqueIndex:idx_job_candidate"`
	Candidate   *User  `gorm:"foreignKey:CandidateID"`

	Status          models.ApplicationStatus `gorm:"type:varchar(50);index"`
	StatusUpdatedAt time.Time
	StatusUpdatedBy *string

	CoverLetter  string
	ResumeFileID string `gorm:"type:varchar(36)"`
	PortfolioURL string `gorm:"type:varchar(255)"`

	// результаты ИИ-скрининга
	AiScreeningCompleted bool
	AiScreeningScore     *float64
	AiScreeningSummary   string

	// итоги интервью
	InterviewFeedback string
	TechnicalScore    *float64
	CulturalScore     *float64

	HrNotes         string
	RejectionReason string
}

// IsAllowStatusChange валидация перехода по воронке, отклик никогда не удаляется - только меняет статус
func (a JobApplication) IsAllowStatusChange(newStatus models.ApplicationStatus) error {
	if !newStatus.IsKnown() {
		return errors.Errorf("неизвестный статус отклика: %v", newStatus)
	}
	if a.Status.IsTerminal() {
		return errors.Errorf("отклик в финальном статусе «%v», смена статуса недоступна", a.Status.ToHuman())
	}
	if !a.Status.CanTransit(newStatus) {
		return errors.Errorf("переход из статуса «%v» в статус «%v» недопустим", a.Status.ToHuman(), newStatus.ToHuman())
	}
	return nil
}

// CanWithdraw отклик может быть отозван кандидатом только на ранних этапах
func (a JobApplication) CanWithdraw() bool {
	return a.Status.CanTransit(models.ApplicationStatusWithdrawn)
}

type ApplicationFilter struct {
	JobID  string                   `json:"job_id"`
	Status models.ApplicationStatus `json:"status"`
	Search string                   `json:"search"`
	apimodels.Pagination
}
