package jobhandler

import (
	"hr-recruit-backend/db"
	jobstore "hr-recruit-backend/lib/job/store"
	jobapimodels "hr-recruit-backend/models/api/job"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(authorID string, data jobapimodels.JobData) (id string, err error)
	Update(authorID, id string, data jobapimodels.JobData) error
	Publish(authorID, id string, publish bool) error
	Delete(authorID, id string) error
	Get(id string, userID string, isStaff bool) (*jobapimodels.JobView, error)
	List(filter jobapimodels.JobFilter, userID string, isStaff bool) (list []jobapimodels.JobView, rowCount int64, err error)
	GetRec(id string) (*dbmodels.Job, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(authorID string, data jobapimodels.JobData) (string, error) {
	rec := dbmodels.Job{
		AuthorID:           authorID,
		Name:               data.Name,
		Description:        data.Description,
		Requirements:       data.Requirements,
		Employment:         data.Employment,
		Experience:         data.Experience,
		WorkLocation:       data.WorkLocation,
		City:               data.City,
		SalaryFrom:         data.SalaryFrom,
		SalaryTo:           data.SalaryTo,
		Currency:           data.Currency,
		Deadline:           data.Deadline,
		MaxApplications:    data.MaxApplications,
		AiScreeningEnabled: data.AiScreeningEnabled,
		ScreeningQuestions: data.ScreeningQuestions,
	}
	if rec.Currency == "" {
		rec.Currency = "RUB"
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания вакансии")
	}
	log.
		WithField("job_id", id).
		WithField("author_id", authorID).
		Info("Создана вакансия")
	return id, nil
}

func (i impl) Update(authorID, id string, data jobapimodels.JobData) error {
	rec, err := i.getOwned(authorID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":                 data.Name,
		"description":          data.Description,
		"requirements":         data.Requirements,
		"employment":           data.Employment,
		"experience":           data.Experience,
		"work_location":        data.WorkLocation,
		"city":                 data.City,
		"salary_from":          data.SalaryFrom,
		"salary_to":            data.SalaryTo,
		"deadline":             data.Deadline,
		"max_applications":     data.MaxApplications,
		"ai_screening_enabled": data.AiScreeningEnabled,
		"screening_questions":  pq.StringArray(data.ScreeningQuestions),
	}
	if data.Currency != "" {
		updMap["currency"] = data.Currency
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления вакансии")
	}
	return nil
}

func (i impl) Publish(authorID, id string, publish bool) error {
	rec, err := i.getOwned(authorID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"is_published": publish,
	}
	if publish && rec.PublishedAt == nil {
		now := time.Now()
		updMap["published_at"] = &now
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка публикации вакансии")
	}
	log.
		WithField("job_id", id).
		WithField("is_published", publish).
		Info("Изменен статус публикации вакансии")
	return nil
}

func (i impl) Delete(authorID, id string) error {
	rec, err := i.getOwned(authorID, id)
	if err != nil {
		return err
	}
	if rec.ApplicationCount > 0 {
		// вакансии с откликами снимаем с публикации, не удаляем
		return i.store.Update(rec.ID, map[string]interface{}{"is_published": false})
	}
	err = i.store.Delete(rec.ID)
	if err != nil {
		return errors.Wrap(err, "ошибка удаления вакансии")
	}
	return nil
}

func (i impl) Get(id string, userID string, isStaff bool) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return nil, errors.New("вакансия не найдена")
	}
	isOwner := isStaff && rec.AuthorID == userID
	if !rec.IsPublished && !isOwner {
		return nil, errors.New("вакансия не найдена")
	}
	if !isOwner {
		if err = i.store.IncViewCount(id); err != nil {
			log.
				WithField("job_id", id).
				WithError(err).
				Error("ошибка обновления счетчика просмотров")
		}
	}
	view := jobapimodels.JobConvert(*rec, isOwner)
	return &view, nil
}

func (i impl) List(filter jobapimodels.JobFilter, userID string, isStaff bool) ([]jobapimodels.JobView, int64, error) {
	authorID := ""
	if filter.OnlyMy && isStaff {
		authorID = userID
	}
	recList, rowCount, err := i.store.List(filter, authorID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	list := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.JobConvert(rec, authorID != ""))
	}
	return list, rowCount, nil
}

func (i impl) GetRec(id string) (*dbmodels.Job, error) {
	return i.store.GetByID(id)
}

func (i impl) getOwned(authorID, id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return nil, errors.New("вакансия не найдена")
	}
	if rec.AuthorID != authorID {
		return nil, errors.New("вакансия принадлежит другому рекрутеру")
	}
	return rec, nil
}
