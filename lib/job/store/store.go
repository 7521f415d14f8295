package jobstore

import (
	"hr-recruit-backend/lib/utils/helpers"
	jobapimodels "hr-recruit-backend/models/api/job"
	dbmodels "hr-recruit-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (*dbmodels.Job, error)
	List(filter jobapimodels.JobFilter, authorID string) (list []dbmodels.Job, rowCount int64, err error)
	IncViewCount(id string) error
	IncApplicationCount(tx *gorm.DB, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
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
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	return helpers.UpdateResult(tx)
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Job{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) List(filter jobapimodels.JobFilter, authorID string) (list []dbmodels.Job, rowCount int64, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{})
	i.addFilter(tx, filter, authorID)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) IncViewCount(id string) error {
	return i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).
		Error
}

func (i impl) IncApplicationCount(tx *gorm.DB, id string) error {
	if tx == nil {
		tx = i.db
	}
	return tx.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1")).
		Error
}

func (i impl) addFilter(tx *gorm.DB, filter jobapimodels.JobFilter, authorID string) {
	if authorID != "" {
		tx.Where("author_id = ?", authorID)
	} else {
		tx.Where("is_published = true")
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(name) like ? or LOWER(city) like ?", searchValue, searchValue)
	}
	if filter.Employment != "" {
		tx.Where("employment = ?", filter.Employment)
	}
	if filter.Experience != "" {
		tx.Where("experience = ?", filter.Experience)
	}
	if filter.WorkLocation != "" {
		tx.Where("work_location = ?", filter.WorkLocation)
	}
	if filter.City != "" {
		tx.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if filter.SalaryFrom > 0 {
		tx.Where("salary_to >= ? or salary_to = 0", filter.SalaryFrom)
	}
}
