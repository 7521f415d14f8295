package interviewstore

import (
	"hr-recruit-backend/lib/utils/helpers"
	"hr-recruit-backend/models"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Interview, error)
	ListByApplication(applicationID string) ([]dbmodels.Interview, error)
	ListByInterviewer(interviewerID string, from, to time.Time) ([]dbmodels.Interview, error)
	HasOverlap(interviewerID string, from, to time.Time) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
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
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap)
	return helpers.UpdateResult(tx)
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Model(&dbmodels.Interview{}).
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

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Order("scheduled_at").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByInterviewer(interviewerID string, from, to time.Time) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(dbmodels.Interview{}).
		Where("interviewer_id = ?", interviewerID).
		Where("scheduled_at between ? and ?", from, to).
		Where("status = ?", models.InterviewStatusScheduled).
		Order("scheduled_at").
		Preload(clause.Associations).
		Preload("Application.Job").
		Preload("Application.Candidate").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

// HasOverlap пересечение по времени с другими назначенными интервью того же интервьюера
func (i impl) HasOverlap(interviewerID string, from, to time.Time) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.Interview{}).
		Select("count(*) > 0").
		Where("interviewer_id = ?", interviewerID).
		Where("status = ?", models.InterviewStatusScheduled).
		Where("scheduled_at < ? and scheduled_at + (duration_minutes || ' minutes')::interval > ?", to, from).
		Find(&exists).
		Error
	return exists, err
}
