package dbmodels

import (
	"hr-recruit-backend/models"
)

// ApplicationStatusLog история смены статусов отклика
type ApplicationStatusLog struct {
	BaseModel
	ApplicationID string          `gorm:"type:varchar(36);index"`
	Application   *JobApplication `gorm:"foreignKey:ApplicationID"`
	OldStatus     models.ApplicationStatus `gorm:"type:varchar(50)"`
	NewStatus     models.ApplicationStatus `gorm:"type:varchar(50)"`
	Comment       string
	UserID        *string
	UserName      string `gorm:"type:varchar(255)"`
}
