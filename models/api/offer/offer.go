package offerapimodels

import (
	dbmodels "hr-recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CreateRequest struct {
	ApplicationID string     `json:"application_id"`
	Position      string     `json:"position"`
	Salary        int        `json:"salary"`
	Currency      string     `json:"currency"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
}

func (r CreateRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("не указан идентификатор отклика")
	}
	if strings.TrimSpace(r.Position) == "" {
		return errors.New("не указана должность")
	}
	if r.Salary <= 0 {
		return errors.New("не указана зарплата")
	}
	if r.ValidUntil != nil && r.ValidUntil.Before(time.Now()) {
		return errors.New("срок действия оффера должен быть в будущем")
	}
	return nil
}

type RespondRequest struct {
	Accept bool   `json:"accept"`
	Note   string `json:"note"`
}

type OfferView struct {
	ID            string     `json:"id"`
	ApplicationID string     `json:"application_id"`
	CandidateName string     `json:"candidate_name,omitempty"`
	JobName       string     `json:"job_name,omitempty"`
	Position      string     `json:"position"`
	Salary        int        `json:"salary"`
	Currency      string     `json:"currency"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	Status        string     `json:"status"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	ResponseNote  string     `json:"response_note,omitempty"`
	HasPdf        bool       `json:"has_pdf"`
	CreatedAt     time.Time  `json:"created_at"`
}

func OfferConvert(rec dbmodels.Offer) OfferView {
	view := OfferView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		Position:      rec.Position,
		Salary:        rec.Salary,
		Currency:      rec.Currency,
		StartDate:     rec.StartDate,
		ValidUntil:    rec.ValidUntil,
		Status:        string(rec.Status),
		SentAt:        rec.SentAt,
		RespondedAt:   rec.RespondedAt,
		ResponseNote:  rec.ResponseNote,
		HasPdf:        rec.PdfFileID != "",
		CreatedAt:     rec.CreatedAt,
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
