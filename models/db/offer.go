package dbmodels

import (
	"hr-recruit-backend/models"
	"time"
)

type Offer struct {
	BaseModel
	ApplicationID string          `gorm:"type:varchar(36);index"`
	Application   *JobApplication `gorm:"foreignKey:ApplicationID"`

	Position   string `gorm:"type:varchar(255)"`
	Salary     int
	Currency   string `gorm:"type:varchar(3);default:RUB"`
	StartDate  *time.Time
	ValidUntil *time.Time

	Status       models.OfferStatus `gorm:"type:varchar(20);index"`
	SentAt       *time.Time
	RespondedAt  *time.Time
	ResponseNote string

	PdfFileID string `gorm:"type:varchar(36)"`
}
