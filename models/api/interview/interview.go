package interviewapimodels

import (
	"hr-recruit-backend/models"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ScheduleRequest struct {
	ApplicationID   string               `json:"application_id"`
	InterviewerID   string               `json:"interviewer_id"`
	ScheduledAt     time.Time            `json:"scheduled_at"`
	DurationMinutes int                  `json:"duration_minutes"`
	Type            models.InterviewType `json:"type"`
}

func (r ScheduleRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("не указан идентификатор отклика")
	}
	if r.InterviewerID == "" {
		return errors.New("не указан интервьюер")
	}
	if r.ScheduledAt.IsZero() || r.ScheduledAt.Before(time.Now()) {
		return errors.New("дата интервью должна быть в будущем")
	}
	if r.DurationMinutes <= 0 || r.DurationMinutes > 480 {
		return errors.New("некорректная длительность интервью")
	}
	switch r.Type {
	case models.InterviewTypePhone, models.InterviewTypeVideo, models.InterviewTypeOnsite, models.InterviewTypeTechnical:
	default:
		return errors.New("неизвестный тип интервью")
	}
	return nil
}

type FeedbackRequest struct {
	Feedback       string   `json:"feedback"`
	TechnicalScore *float64 `json:"technical_score"`
	CulturalScore  *float64 `json:"cultural_score"`
}

func (r FeedbackRequest) Validate() error {
	if r.Feedback == "" {
		return errors.New("не указан отзыв по итогам интервью")
	}
	for _, score := range []*float64{r.TechnicalScore, r.CulturalScore} {
		if score != nil && (*score < 0 || *score > 100) {
			return errors.New("оценка должна быть в диапазоне от 0 до 100")
		}
	}
	return nil
}

type InterviewView struct {
	ID              string     `json:"id"`
	ApplicationID   string     `json:"application_id"`
	CandidateName   string     `json:"candidate_name,omitempty"`
	JobName         string     `json:"job_name,omitempty"`
	InterviewerID   string     `json:"interviewer_id"`
	InterviewerName string     `json:"interviewer_name,omitempty"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	MeetingLink     string     `json:"meeting_link,omitempty"`
	Feedback        string     `json:"feedback,omitempty"`
	TechnicalScore  *float64   `json:"technical_score,omitempty"`
	CulturalScore   *float64   `json:"cultural_score,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		ID:              rec.ID,
		ApplicationID:   rec.ApplicationID,
		InterviewerID:   rec.InterviewerID,
		ScheduledAt:     rec.ScheduledAt,
		DurationMinutes: rec.DurationMinutes,
		Type:            string(rec.Type),
		Status:          string(rec.Status),
		MeetingLink:     rec.MeetingLink,
		Feedback:        rec.Feedback,
		TechnicalScore:  rec.TechnicalScore,
		CulturalScore:   rec.CulturalScore,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.Interviewer != nil {
		view.InterviewerName = rec.Interviewer.GetFullName()
	}
	if rec.Application != nil {
		if rec.Application.Candidate != nil {
			view.CandidateName = rec.Application.Candidate.GetFullName()
		}
		if rec.Application.Job != nil {
			view.JobName = rec.Application.Job.Name
		}
	}
	return view
}
