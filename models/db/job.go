package dbmodels

import (
	"hr-recruit-backend/models"
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	AuthorID        string `gorm:"type:varchar(36);index"`
	Author          *User  `gorm:"foreignKey:AuthorID"`
	Name            string `gorm:"type:varchar(255)"`
	Description     string
	Requirements    string
	Employment      models.EmploymentType  `gorm:"type:varchar(50)"`
	Experience      models.ExperienceLevel `gorm:"type:varchar(50)"`
	WorkLocation    models.WorkLocation    `gorm:"type:varchar(50)"`
	City            string                 `gorm:"type:varchar(100)"`
	SalaryFrom      int
	SalaryTo        int
	Currency        string `gorm:"type:varchar(3);default:RUB"`
	IsPublished     bool   `gorm:"index"`
	PublishedAt     *time.Time
	Deadline        *time.Time
	MaxApplications int

	// настройки ИИ-скрининга
	AiScreeningEnabled bool
	ScreeningQuestions pq.StringArray `gorm:"type:text[]"`

	ViewCount        int
	ApplicationCount int
}

// CanAcceptApplications вакансия доступна для отклика
func (j Job) CanAcceptApplications() bool {
	if !j.IsPublished {
		return false
	}
	if j.Deadline != nil && j.Deadline.Before(time.Now()) {
		return false
	}
	if j.MaxApplications > 0 && j.ApplicationCount >= j.MaxApplications {
		return false
	}
	return true
}
