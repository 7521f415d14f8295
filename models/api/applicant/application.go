package applicantapimodels

import (
	"hr-recruit-backend/models"
	apimodels "hr-recruit-backend/models/api"
	dbmodels "hr-recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type ApplyRequest struct {
	JobID        string `json:"job_id"`
	CoverLetter  string `json:"cover_letter"`
	PortfolioURL string `json:"portfolio_url"`
}

func (r ApplyRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	return nil
}

type StatusChangeRequest struct {
	Status  models.ApplicationStatus `json:"status"`
	Comment string                   `json:"comment"`
}

func (r StatusChangeRequest) Validate() error {
	if r.Status == "" {
		return errors.New("не указан новый статус")
	}
	if !r.Status.IsKnown() {
		return errors.Errorf("неизвестный статус отклика: %v", r.Status)
	}
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r RejectRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type NoteRequest struct {
	Note string `json:"note"`
}

func (r NoteRequest) Validate() error {
	if strings.TrimSpace(r.Note) == "" {
		return errors.New("комментарий не может быть пустым")
	}
	return nil
}

type ApplicationView struct {
	ID            string `json:"id"`
	JobID         string `json:"job_id"`
	JobName       string `json:"job_name,omitempty"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`

	Status          string    `json:"status"`
	StatusName      string    `json:"status_name"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`

	CoverLetter  string `json:"cover_letter,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	HasResume    bool   `json:"has_resume"`

	AiScreeningCompleted bool     `json:"ai_screening_completed"`
	AiScreeningScore     *float64 `json:"ai_screening_score,omitempty"`
	AiScreeningSummary   string   `json:"ai_screening_summary,omitempty"`

	InterviewFeedback string   `json:"interview_feedback,omitempty"`
	TechnicalScore    *float64 `json:"technical_score,omitempty"`
	CulturalScore     *float64 `json:"cultural_score,omitempty"`

	HrNotes         string    `json:"hr_notes,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ApplicationConvert вью для рекрутера, withAssessment управляет видимостью оценок
func ApplicationConvert(rec dbmodels.JobApplication, withAssessment bool) ApplicationView {
	view := ApplicationView{
		ID:              rec.ID,
		JobID:           rec.JobID,
		CandidateID:     rec.CandidateID,
		Status:          string(rec.Status),
		StatusName:      rec.Status.ToHuman(),
		StatusUpdatedAt: rec.StatusUpdatedAt,
		CoverLetter:     rec.CoverLetter,
		PortfolioURL:    rec.PortfolioURL,
		HasResume:       rec.ResumeFileID != "",
		RejectionReason: rec.RejectionReason,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.Job != nil {
		view.JobName = rec.Job.Name
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.GetFullName()
	}
	if withAssessment {
		view.AiScreeningCompleted = rec.AiScreeningCompleted
		view.AiScreeningScore = rec.AiScreeningScore
		view.AiScreeningSummary = rec.AiScreeningSummary
		view.InterviewFeedback = rec.InterviewFeedback
		view.TechnicalScore = rec.TechnicalScore
		view.CulturalScore = rec.CulturalScore
		view.HrNotes = rec.HrNotes
	}
	return view
}

type StatusLogView struct {
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	NewStatusName string    `json:"new_status_name"`
	Comment       string    `json:"comment,omitempty"`
	UserName      string    `json:"user_name"`
	ChangedAt     time.Time `json:"changed_at"`
}

func StatusLogConvert(rec dbmodels.ApplicationStatusLog) StatusLogView {
	return StatusLogView{
		OldStatus:     string(rec.OldStatus),
		NewStatus:     string(rec.NewStatus),
		NewStatusName: rec.NewStatus.ToHuman(),
		Comment:       rec.Comment,
		UserName:      rec.UserName,
		ChangedAt:     rec.CreatedAt,
	}
}

type StatusLogFilter struct {
	apimodels.Pagination
}
