package interviewhandler

import (
	"fmt"
	"hr-recruit-backend/config"
	"hr-recruit-backend/db"
	applicanthandler "hr-recruit-backend/lib/applicant"
	interviewstore "hr-recruit-backend/lib/interview/store"
	notificationhandler "hr-recruit-backend/lib/notification"
	"hr-recruit-backend/models"
	interviewapimodels "hr-recruit-backend/models/api/interview"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Schedule(userID string, req interviewapimodels.ScheduleRequest) (*interviewapimodels.InterviewView, error)
	Cancel(id, userID string) error
	SaveFeedback(id, userID string, req interviewapimodels.FeedbackRequest) error
	Get(id, userID string, isStaff bool) (*interviewapimodels.InterviewView, error)
	ListByApplication(applicationID, userID string, isStaff bool) ([]interviewapimodels.InterviewView, error)
	MySchedule(interviewerID string, from, to time.Time) ([]interviewapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: interviewstore.NewInstance(db.DB),
	}
}

type impl struct {
	store interviewstore.Provider
}

func (i impl) Schedule(userID string, req interviewapimodels.ScheduleRequest) (*interviewapimodels.InterviewView, error) {
	application, err := applicanthandler.Instance.GetRec(req.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil || application.Job == nil || application.Job.AuthorID != userID {
		return nil, errors.New("отклик не найден")
	}
	from := req.ScheduledAt
	to := from.Add(time.Duration(req.DurationMinutes) * time.Minute)
	overlap, err := i.store.HasOverlap(req.InterviewerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки занятости интервьюера")
	}
	if overlap {
		return nil, errors.New("у интервьюера уже назначено интервью на это время")
	}
	rec := dbmodels.Interview{
		ApplicationID:   application.ID,
		InterviewerID:   req.InterviewerID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Status:          models.InterviewStatusScheduled,
	}
	if req.Type == models.InterviewTypeVideo {
		rec.MeetingLink = fmt.Sprintf(config.Conf.Meeting.LinkTemplate, uuid.NewString())
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания интервью")
	}
	// статус отклика двигаем только с этапа скрининга
	if application.Status.CanTransit(models.ApplicationStatusInterviewScheduled) {
		err = applicanthandler.Instance.SetStatusBySystem(application.ID, models.ApplicationStatusInterviewScheduled, "назначено интервью")
		if err != nil {
			return nil, err
		}
	}
	jobName := application.Job.Name
	notificationhandler.Instance.Notify(application.CandidateID,
		models.GetNotifyInterviewScheduled(jobName, req.ScheduledAt.Format("02.01.2006 15:04"), rec.MeetingLink))
	log.
		WithField("interview_id", id).
		WithField("application_id", application.ID).
		Info("Назначено интервью")
	return i.getView(id)
}

func (i impl) Cancel(id, userID string) error {
	rec, err := i.getOwned(id, userID)
	if err != nil {
		return err
	}
	if rec.Status != models.InterviewStatusScheduled {
		return errors.New("отменить можно только назначенное интервью")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"status": models.InterviewStatusCancelled})
	if err != nil {
		return errors.Wrap(err, "ошибка отмены интервью")
	}
	if rec.Application != nil && rec.Application.Job != nil {
		notificationhandler.Instance.Notify(rec.Application.CandidateID,
			models.GetNotifyInterviewCancelled(rec.Application.Job.Name, rec.ScheduledAt.Format("02.01.2006 15:04")))
	}
	log.
		WithField("interview_id", id).
		Info("Интервью отменено")
	return nil
}

func (i impl) SaveFeedback(id, userID string, req interviewapimodels.FeedbackRequest) error {
	rec, err := i.getOwned(id, userID)
	if err != nil {
		return err
	}
	if rec.Status == models.InterviewStatusCancelled {
		return errors.New("интервью отменено")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status":          models.InterviewStatusCompleted,
		"feedback":        req.Feedback,
		"technical_score": req.TechnicalScore,
		"cultural_score":  req.CulturalScore,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения итогов интервью")
	}
	err = applicanthandler.Instance.SaveInterviewResult(rec.ApplicationID, req.Feedback, req.TechnicalScore, req.CulturalScore)
	if err != nil {
		return err
	}
	if rec.Application != nil && rec.Application.Status.CanTransit(models.ApplicationStatusInterviewCompleted) {
		err = applicanthandler.Instance.SetStatusBySystem(rec.ApplicationID, models.ApplicationStatusInterviewCompleted, "интервью проведено")
		if err != nil {
			return err
		}
	}
	log.
		WithField("interview_id", id).
		Info("Сохранены итоги интервью")
	return nil
}

func (i impl) Get(id, userID string, isStaff bool) (*interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return nil, errors.New("интервью не найдено")
	}
	if !i.isAllowed(rec, userID, isStaff) {
		return nil, errors.New("интервью не найдено")
	}
	view := interviewapimodels.InterviewConvert(*rec)
	if !isStaff {
		view.Feedback = ""
		view.TechnicalScore = nil
		view.CulturalScore = nil
	}
	return &view, nil
}

func (i impl) ListByApplication(applicationID, userID string, isStaff bool) ([]interviewapimodels.InterviewView, error) {
	application, err := applicanthandler.Instance.GetRec(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil {
		return nil, errors.New("отклик не найден")
	}
	if isStaff {
		if application.Job == nil || application.Job.AuthorID != userID {
			return nil, errors.New("отклик не найден")
		}
	} else if application.CandidateID != userID {
		return nil, errors.New("отклик не найден")
	}
	recList, err := i.store.ListByApplication(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка интервью")
	}
	list := make([]interviewapimodels.InterviewView, 0, len(recList))
	for _, rec := range recList {
		view := interviewapimodels.InterviewConvert(rec)
		if !isStaff {
			view.Feedback = ""
			view.TechnicalScore = nil
			view.CulturalScore = nil
		}
		list = append(list, view)
	}
	return list, nil
}

func (i impl) MySchedule(interviewerID string, from, to time.Time) ([]interviewapimodels.InterviewView, error) {
	recList, err := i.store.ListByInterviewer(interviewerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения расписания интервью")
	}
	list := make([]interviewapimodels.InterviewView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, interviewapimodels.InterviewConvert(rec))
	}
	return list, nil
}

func (i impl) getView(id string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil || rec == nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	view := interviewapimodels.InterviewConvert(*rec)
	return &view, nil
}

func (i impl) getOwned(id, userID string) (*dbmodels.Interview, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return nil, errors.New("интервью не найдено")
	}
	if rec.Application == nil || rec.Application.Job == nil ||
		(rec.Application.Job.AuthorID != userID && rec.InterviewerID != userID) {
		return nil, errors.New("интервью не найдено")
	}
	return rec, nil
}

func (i impl) isAllowed(rec *dbmodels.Interview, userID string, isStaff bool) bool {
	if isStaff {
		if rec.InterviewerID == userID {
			return true
		}
		return rec.Application != nil && rec.Application.Job != nil && rec.Application.Job.AuthorID == userID
	}
	return rec.Application != nil && rec.Application.CandidateID == userID
}
