package dbmodels

import (
	"fmt"
	"hr-recruit-backend/models"
	"time"
)

type User struct {
	BaseModel
	Email       string          `gorm:"type:varchar(255);uniqueIndex"`
	Password    string          `gorm:"type:varchar(128)"`
	Role        models.UserRole `gorm:"type:varchar(50);index"`
	FirstName   string          `gorm:"type:varchar(150)"`
	LastName    string          `gorm:"type:varchar(150)"`
	PhoneNumber string          `gorm:"type:varchar(20)"`
	IsActive    bool
	CompanyName string `gorm:"type:varchar(255)"` // для рекрутеров
	Position    string `gorm:"type:varchar(255)"`
	LastLogin   time.Time
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
