package dbmodels

import (
	"hr-recruit-backend/models"
	"time"

	"github.com/lib/pq"
)

type ChatSession struct {
	BaseModel
	ApplicationID string          `gorm:"type:varchar(36);index:idx_session_application"`
	Application   *JobApplication `gorm:"foreignKey:ApplicationID"`
	CandidateID   string          `gorm:"type:varchar(36);index"`
	JobID         string          `gorm:"type:varchar(36)"`

	Status models.SessionStatus `gorm:"type:varchar(20);index"`

	QuestionsTotal    int
	QuestionsAnswered int

	// итоговая оценка, заполняется один раз при завершении сессии
	OverallScore   *float64
	Summary        string
	Recommendation string
	Strengths      pq.StringArray `gorm:"type:text[]"`
	RedFlags       pq.StringArray `gorm:"type:text[]"`

	CompletedAt *time.Time

	Messages []ChatMessage `gorm:"foreignKey:SessionID"`
}

func (s ChatSession) IsActive() bool {
	return s.Status == models.SessionStatusActive
}

func (s ChatSession) IsCompleted() bool {
	return s.Status == models.SessionStatusCompleted
}
