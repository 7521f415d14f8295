package filesdbstore

import (
	dbmodels "hr-recruit-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.FileMeta) (id string, err error)
	GetByID(id string) (*dbmodels.FileMeta, error)
}

type impl struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

func (i impl) Save(rec dbmodels.FileMeta) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileMeta, error) {
	rec := dbmodels.FileMeta{}
	err := i.db.
		Model(&dbmodels.FileMeta{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
