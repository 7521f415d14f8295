package dbmodels

import (
	"hr-recruit-backend/models"
	"time"
)

type Interview struct {
	BaseModel
	ApplicationID string          `gorm:"type:varchar(36);index"`
	Application   *JobApplication `gorm:"foreignKey:ApplicationID"`
	InterviewerID string          `gorm:"type:varchar(36);index"`
	Interviewer   *User           `gorm:"foreignKey:InterviewerID"`

	ScheduledAt     time.Time `gorm:"index"`
	DurationMinutes int
	Type            models.InterviewType   `gorm:"type:varchar(50)"`
	Status          models.InterviewStatus `gorm:"type:varchar(20);index"`
	MeetingLink     string                 `gorm:"type:varchar(255)"`

	Feedback       string
	TechnicalScore *float64
	CulturalScore  *float64
}
