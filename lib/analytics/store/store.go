package analyticsstore

import (
	"database/sql"
	"hr-recruit-backend/models"
	dbmodels "hr-recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	CountActiveJobs(authorID string) (int64, error)
	CountApplications(authorID, jobID string) (int64, error)
	CountByStatuses(authorID, jobID string) (map[models.ApplicationStatus]int64, error)
	ReachedStageCounts(jobID string) (map[models.ApplicationStatus]int64, error)
	AvgTimeToHireDays(authorID string) (*float64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CountActiveJobs(authorID string) (cnt int64, err error) {
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("is_published = true")
	if authorID != "" {
		tx.Where("author_id = ?", authorID)
	}
	err = tx.Count(&cnt).Error
	return cnt, err
}

func (i impl) CountApplications(authorID, jobID string) (cnt int64, err error) {
	tx := i.db.
		Model(&dbmodels.JobApplication{})
	if authorID != "" {
		tx.Joins("left join jobs as j on job_id = j.id").
			Where("j.author_id = ?", authorID)
	}
	if jobID != "" {
		tx.Where("job_id = ?", jobID)
	}
	err = tx.Count(&cnt).Error
	return cnt, err
}

func (i impl) CountByStatuses(authorID, jobID string) (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Cnt    int64
	}
	rows := []row{}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Select("job_applications.status, count(*) as cnt")
	if authorID != "" {
		tx.Joins("left join jobs as j on job_id = j.id").
			Where("j.author_id = ?", authorID)
	}
	if jobID != "" {
		tx.Where("job_id = ?", jobID)
	}
	err := tx.
		Group("job_applications.status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Cnt
	}
	return result, nil
}

// ReachedStageCounts сколько откликов когда-либо достигало каждого этапа, по истории статусов
func (i impl) ReachedStageCounts(jobID string) (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Cnt    int64
	}
	rows := []row{}
	err := i.db.
		Model(&dbmodels.ApplicationStatusLog{}).
		Select("application_status_logs.new_status as status, count(distinct application_id) as cnt").
		Joins("left join job_applications as a on application_id = a.id").
		Where("a.job_id = ?", jobID).
		Group("application_status_logs.new_status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Cnt
	}
	return result, nil
}

func (i impl) AvgTimeToHireDays(authorID string) (*float64, error) {
	var avg sql.NullFloat64
	tx := i.db.
		Model(&dbmodels.ApplicationStatusLog{}).
		Select("avg(extract(epoch from (application_status_logs.created_at - a.created_at)) / 86400)").
		Joins("left join job_applications as a on application_id = a.id").
		Where("application_status_logs.new_status = ?", models.ApplicationStatusHired)
	if authorID != "" {
		tx.Joins("left join jobs as j on a.job_id = j.id").
			Where("j.author_id = ?", authorID)
	}
	err := tx.
		Row().
		Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
