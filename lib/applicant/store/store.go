package applicantstore

import (
	"hr-recruit-backend/lib/utils/helpers"
	dbmodels "hr-recruit-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.JobApplication, error)
	IsExist(jobID, candidateID string) (bool, error)
	List(filter dbmodels.ApplicationFilter, jobAuthorID, candidateID string) (list []dbmodels.JobApplication, rowCount int64, err error)
	ListForExport(filter dbmodels.ApplicationFilter, jobAuthorID string) ([]dbmodels.JobApplication, error)
	CountByStatuses(jobID string) (map[string]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
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
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	return helpers.UpdateResult(tx)
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Model(&dbmodels.JobApplication{}).
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

func (i impl) IsExist(jobID, candidateID string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.JobApplication{}).
		Select("count(*) > 0").
		Where("job_id = ? and candidate_id = ?", jobID, candidateID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List(filter dbmodels.ApplicationFilter, jobAuthorID, candidateID string) (list []dbmodels.JobApplication, rowCount int64, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Model(dbmodels.JobApplication{})
	if jobAuthorID != "" {
		tx.Joins("left join jobs as j on job_id = j.id").
			Where("j.author_id = ?", jobAuthorID)
	}
	if candidateID != "" {
		tx.Where("candidate_id = ?", candidateID)
	}
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("job_applications.created_at desc").
		Offset((page - 1) * limit).
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

const exportLimit = 10000

func (i impl) ListForExport(filter dbmodels.ApplicationFilter, jobAuthorID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Model(dbmodels.JobApplication{}).
		Joins("left join jobs as j on job_id = j.id").
		Where("j.author_id = ?", jobAuthorID)
	i.addFilter(tx, filter)
	err = tx.
		Order("job_applications.created_at desc").
		Limit(exportLimit).
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByStatuses(jobID string) (map[string]int64, error) {
	type row struct {
		Status string
		Cnt    int64
	}
	rows := []row{}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Select("status, count(*) as cnt")
	if jobID != "" {
		tx.Where("job_id = ?", jobID)
	}
	err := tx.
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Cnt
	}
	return result, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) {
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx.Where("job_applications.status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Joins("left join users as u on candidate_id = u.id").
			Where("LOWER(CONCAT(u.last_name,' ', u.first_name)) like ? or u.email like ?", searchValue, searchValue)
	}
}
