package applicanthandler

import (
	"context"
	"hr-recruit-backend/db"
	applicantstore "hr-recruit-backend/lib/applicant/store"
	statuslogstore "hr-recruit-backend/lib/applicant/status-log-store"
	filestorage "hr-recruit-backend/lib/file-storage"
	jobstore "hr-recruit-backend/lib/job/store"
	notificationhandler "hr-recruit-backend/lib/notification"
	usersstore "hr-recruit-backend/lib/users/store"
	"hr-recruit-backend/models"
	applicantapimodels "hr-recruit-backend/models/api/applicant"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Apply(candidateID string, req applicantapimodels.ApplyRequest) (id string, err error)
	Get(id, userID string, isStaff bool) (*applicantapimodels.ApplicationView, error)
	List(filter dbmodels.ApplicationFilter, userID string, isStaff bool) (list []applicantapimodels.ApplicationView, rowCount int64, err error)
	ChangeStatus(id, userID string, req applicantapimodels.StatusChangeRequest) error
	Reject(id, userID, reason string) error
	Withdraw(id, candidateID string) error
	SetNote(id, userID, note string) error
	StatusLog(id, userID string, isStaff bool) ([]applicantapimodels.StatusLogView, error)
	UploadResume(ctx context.Context, id, candidateID, fileName, contentType string, data []byte) error
	GetResume(ctx context.Context, id, userID string, isStaff bool) (data []byte, fileName string, err error)

	// SetStatusBySystem служебная смена статуса из обработчиков скрининга/интервью/оффера
	SetStatusBySystem(id string, newStatus models.ApplicationStatus, comment string) error
	SaveScreeningResult(id string, score float64, summary string) error
	SaveInterviewResult(id, feedback string, technicalScore, culturalScore *float64) error
	GetRec(id string) (*dbmodels.JobApplication, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     applicantstore.NewInstance(db.DB),
		logStore:  statuslogstore.NewInstance(db.DB),
		jobStore:  jobstore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     applicantstore.Provider
	logStore  statuslogstore.Provider
	jobStore  jobstore.Provider
	userStore usersstore.Provider
}

func (i impl) Apply(candidateID string, req applicantapimodels.ApplyRequest) (string, error) {
	job, err := i.jobStore.GetByID(req.JobID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		return "", errors.New("вакансия не найдена")
	}
	if !job.CanAcceptApplications() {
		return "", errors.New("вакансия недоступна для отклика")
	}
	exist, err := i.store.IsExist(req.JobID, candidateID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки отклика")
	}
	if exist {
		return "", errors.New("вы уже откликались на эту вакансию")
	}
	rec := dbmodels.JobApplication{
		JobID:           req.JobID,
		CandidateID:     candidateID,
		Status:          models.ApplicationStatusApplied,
		StatusUpdatedAt: time.Now(),
		CoverLetter:     req.CoverLetter,
		PortfolioURL:    req.PortfolioURL,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания отклика")
	}
	if err = i.jobStore.IncApplicationCount(nil, job.ID); err != nil {
		log.
			WithField("job_id", job.ID).
			WithError(err).
			Error("ошибка обновления счетчика откликов")
	}
	_, err = i.logStore.Save(dbmodels.ApplicationStatusLog{
		ApplicationID: id,
		NewStatus:     models.ApplicationStatusApplied,
		UserID:        &candidateID,
		UserName:      i.userName(candidateID),
	})
	if err != nil {
		log.
			WithField("application_id", id).
			WithError(err).
			Error("ошибка записи истории статусов")
	}
	candidate, _ := i.userStore.GetByID(candidateID)
	candidateName := ""
	if candidate != nil {
		candidateName = candidate.GetFullName()
	}
	notificationhandler.Instance.Notify(job.AuthorID, models.GetNotifyApplicationReceived(job.Name, candidateName))
	log.
		WithField("application_id", id).
		WithField("job_id", job.ID).
		Info("Создан отклик на вакансию")
	return id, nil
}

func (i impl) Get(id, userID string, isStaff bool) (*applicantapimodels.ApplicationView, error) {
	rec, err := i.getAllowed(id, userID, isStaff)
	if err != nil {
		return nil, err
	}
	view := applicantapimodels.ApplicationConvert(*rec, isStaff)
	return &view, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter, userID string, isStaff bool) ([]applicantapimodels.ApplicationView, int64, error) {
	jobAuthorID := ""
	candidateID := ""
	if isStaff {
		jobAuthorID = userID
	} else {
		candidateID = userID
	}
	recList, rowCount, err := i.store.List(filter, jobAuthorID, candidateID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка откликов")
	}
	list := make([]applicantapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicantapimodels.ApplicationConvert(rec, isStaff))
	}
	return list, rowCount, nil
}

func (i impl) ChangeStatus(id, userID string, req applicantapimodels.StatusChangeRequest) error {
	rec, err := i.getAllowed(id, userID, true)
	if err != nil {
		return err
	}
	return i.changeStatus(rec, req.Status, req.Comment, &userID, i.userName(userID))
}

func (i impl) Reject(id, userID, reason string) error {
	rec, err := i.getAllowed(id, userID, true)
	if err != nil {
		return err
	}
	err = i.changeStatus(rec, models.ApplicationStatusRejected, reason, &userID, i.userName(userID))
	if err != nil {
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"rejection_reason": reason})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения причины отклонения")
	}
	return nil
}

func (i impl) Withdraw(id, candidateID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil || rec.CandidateID != candidateID {
		return errors.New("отклик не найден")
	}
	if !rec.CanWithdraw() {
		return errors.New("отклик нельзя отозвать на текущем этапе")
	}
	return i.changeStatus(rec, models.ApplicationStatusWithdrawn, "", &candidateID, i.userName(candidateID))
}

func (i impl) SetNote(id, userID, note string) error {
	rec, err := i.getAllowed(id, userID, true)
	if err != nil {
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"hr_notes": note})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения комментария")
	}
	return nil
}

func (i impl) StatusLog(id, userID string, isStaff bool) ([]applicantapimodels.StatusLogView, error) {
	rec, err := i.getAllowed(id, userID, isStaff)
	if err != nil {
		return nil, err
	}
	recList, err := i.logStore.ListByApplication(rec.ID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения истории статусов")
	}
	list := make([]applicantapimodels.StatusLogView, 0, len(recList))
	for _, item := range recList {
		list = append(list, applicantapimodels.StatusLogConvert(item))
	}
	return list, nil
}

func (i impl) UploadResume(ctx context.Context, id, candidateID, fileName, contentType string, data []byte) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil || rec.CandidateID != candidateID {
		return errors.New("отклик не найден")
	}
	fileID, err := filestorage.Instance.UploadResume(ctx, candidateID, fileName, contentType, data)
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки резюме")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"resume_file_id": fileID})
	if err != nil {
		return errors.Wrap(err, "ошибка привязки резюме к отклику")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, id, userID string, isStaff bool) ([]byte, string, error) {
	rec, err := i.getAllowed(id, userID, isStaff)
	if err != nil {
		return nil, "", err
	}
	if rec.ResumeFileID == "" {
		return nil, "", errors.New("резюме не загружено")
	}
	data, meta, err := filestorage.Instance.GetFile(ctx, rec.ResumeFileID)
	if err != nil {
		return nil, "", err
	}
	return data, meta.Name, nil
}

func (i impl) SetStatusBySystem(id string, newStatus models.ApplicationStatus, comment string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return errors.New("отклик не найден")
	}
	return i.changeStatus(rec, newStatus, comment, nil, models.SystemUser)
}

func (i impl) SaveScreeningResult(id string, score float64, summary string) error {
	err := i.store.Update(id, map[string]interface{}{
		"ai_screening_completed": true,
		"ai_screening_score":     score,
		"ai_screening_summary":   summary,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения итогов скрининга")
	}
	return nil
}

func (i impl) SaveInterviewResult(id, feedback string, technicalScore, culturalScore *float64) error {
	err := i.store.Update(id, map[string]interface{}{
		"interview_feedback": feedback,
		"technical_score":    technicalScore,
		"cultural_score":     culturalScore,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения итогов интервью")
	}
	return nil
}

func (i impl) GetRec(id string) (*dbmodels.JobApplication, error) {
	return i.store.GetByID(id)
}

// changeStatus единая точка перехода по воронке: валидация, запись истории, уведомления
func (i impl) changeStatus(rec *dbmodels.JobApplication, newStatus models.ApplicationStatus, comment string, userID *string, userName string) error {
	if err := rec.IsAllowStatusChange(newStatus); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"status":            newStatus,
		"status_updated_at": time.Now(),
		"status_updated_by": userID,
	}
	err := i.store.Update(rec.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка смены статуса отклика")
	}
	_, err = i.logStore.Save(dbmodels.ApplicationStatusLog{
		ApplicationID: rec.ID,
		OldStatus:     rec.Status,
		NewStatus:     newStatus,
		Comment:       comment,
		UserID:        userID,
		UserName:      userName,
	})
	if err != nil {
		log.
			WithField("application_id", rec.ID).
			WithError(err).
			Error("ошибка записи истории статусов")
	}
	log.
		WithField("application_id", rec.ID).
		WithField("old_status", rec.Status).
		WithField("new_status", newStatus).
		Info("Изменен статус отклика")
	i.notifyStatusChanged(rec, newStatus)
	return nil
}

func (i impl) notifyStatusChanged(rec *dbmodels.JobApplication, newStatus models.ApplicationStatus) {
	jobName := ""
	recruiterID := ""
	if rec.Job != nil {
		jobName = rec.Job.Name
		recruiterID = rec.Job.AuthorID
	}
	candidateName := ""
	if rec.Candidate != nil {
		candidateName = rec.Candidate.GetFullName()
	}
	switch newStatus {
	case models.ApplicationStatusRejected:
		notificationhandler.Instance.Notify(rec.CandidateID, models.GetNotifyApplicationRejected(jobName))
	case models.ApplicationStatusWithdrawn:
		if recruiterID != "" {
			notificationhandler.Instance.Notify(recruiterID, models.GetNotifyApplicationWithdrawn(candidateName, jobName))
		}
	case models.ApplicationStatusScreening:
		notificationhandler.Instance.Notify(rec.CandidateID, models.GetNotifyScreeningInvite(jobName))
	default:
		notificationhandler.Instance.Notify(rec.CandidateID, models.GetNotifyStatusChanged(jobName, newStatus))
	}
}

func (i impl) getAllowed(id, userID string, isStaff bool) (*dbmodels.JobApplication, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, errors.New("отклик не найден")
	}
	if isStaff {
		if rec.Job == nil || rec.Job.AuthorID != userID {
			return nil, errors.New("отклик по вакансии другого рекрутера")
		}
		return rec, nil
	}
	if rec.CandidateID != userID {
		return nil, errors.New("отклик не найден")
	}
	return rec, nil
}

func (i impl) userName(userID string) string {
	rec, err := i.userStore.GetByID(userID)
	if err != nil || rec == nil {
		return ""
	}
	return rec.GetFullName()
}
