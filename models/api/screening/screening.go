package screeningapimodels

import (
	dbmodels "hr-recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type StartRequest struct {
	ApplicationID string `json:"application_id"`
}

func (r StartRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("не указан идентификатор отклика")
	}
	return nil
}

type SubmitMessageRequest struct {
	Text string `json:"text"`
}

func (r SubmitMessageRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("сообщение не может быть пустым")
	}
	if len(r.Text) > 4000 {
		return errors.New("сообщение слишком длинное")
	}
	return nil
}

type MessageView struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionView struct {
	ID                string        `json:"id"`
	ApplicationID     string        `json:"application_id"`
	Status            string        `json:"status"`
	QuestionsTotal    int           `json:"questions_total"`
	QuestionsAnswered int           `json:"questions_answered"`
	Messages          []MessageView `json:"messages,omitempty"`
	StartedAt         time.Time     `json:"started_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

type ReplyView struct {
	Reply string `json:"reply"`
}

type SummaryView struct {
	Score          float64  `json:"score"`
	Summary        string   `json:"summary"`
	Recommendation string   `json:"recommendation,omitempty"`
	Strengths      []string `json:"strengths,omitempty"`
	RedFlags       []string `json:"red_flags,omitempty"`
}

func SessionConvert(rec dbmodels.ChatSession, withMessages bool) SessionView {
	view := SessionView{
		ID:                rec.ID,
		ApplicationID:     rec.ApplicationID,
		Status:            string(rec.Status),
		QuestionsTotal:    rec.QuestionsTotal,
		QuestionsAnswered: rec.QuestionsAnswered,
		StartedAt:         rec.CreatedAt,
		CompletedAt:       rec.CompletedAt,
	}
	if withMessages {
		view.Messages = make([]MessageView, 0, len(rec.Messages))
		for _, msg := range rec.Messages {
			view.Messages = append(view.Messages, MessageView{
				Role:      string(msg.Role),
				Text:      msg.Text,
				CreatedAt: msg.CreatedAt,
			})
		}
	}
	return view
}

func SummaryConvert(rec dbmodels.ChatSession) SummaryView {
	view := SummaryView{
		Summary:        rec.Summary,
		Recommendation: rec.Recommendation,
		Strengths:      rec.Strengths,
		RedFlags:       rec.RedFlags,
	}
	if rec.OverallScore != nil {
		view.Score = *rec.OverallScore
	}
	return view
}
