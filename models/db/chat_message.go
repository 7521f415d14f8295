package dbmodels

import (
	"hr-recruit-backend/models"
)

type ChatMessage struct {
	BaseModel
	SessionID string          `gorm:"type:varchar(36);index:idx_message_session"`
	Role      models.ChatRole `gorm:"type:varchar(20)"`
	Text      string
}
