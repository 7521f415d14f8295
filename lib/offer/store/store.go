package offerstore

import (
	"hr-recruit-backend/lib/utils/helpers"
	dbmodels "hr-recruit-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Offer) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Offer, error)
	GetByApplication(applicationID string) (*dbmodels.Offer, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Offer) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Offer{}).
		Where("id = ?", id).
		Updates(updMap)
	return helpers.UpdateResult(tx)
}

func (i impl) GetByID(id string) (*dbmodels.Offer, error) {
	rec := dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		Preload("Application.Job").
		Preload("Application.Candidate").
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

func (i impl) GetByApplication(applicationID string) (*dbmodels.Offer, error) {
	rec := dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Preload(clause.Associations).
		Preload("Application.Job").
		Preload("Application.Candidate").
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
