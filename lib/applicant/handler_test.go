package applicanthandler

import (
	notificationhandler "hr-recruit-backend/lib/notification"
	usersstore "hr-recruit-backend/lib/users/store"
	"hr-recruit-backend/models"
	apimodels "hr-recruit-backend/models/api"
	applicantapimodels "hr-recruit-backend/models/api/applicant"
	notificationapimodels "hr-recruit-backend/models/api/notification"
	dbmodels "hr-recruit-backend/models/db"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeApplicantStore struct {
	recs map[string]*dbmodels.JobApplication
}

func newFakeApplicantStore() *fakeApplicantStore {
	return &fakeApplicantStore{recs: map[string]*dbmodels.JobApplication{}}
}

func (f *fakeApplicantStore) Create(rec dbmodels.JobApplication) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeApplicantStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("запись не найдена")
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.ApplicationStatus)
	}
	if note, ok := updMap["hr_notes"]; ok {
		rec.HrNotes = note.(string)
	}
	if reason, ok := updMap["rejection_reason"]; ok {
		rec.RejectionReason = reason.(string)
	}
	return nil
}

func (f *fakeApplicantStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return f.recs[id], nil
}

func (f *fakeApplicantStore) IsExist(jobID, candidateID string) (bool, error) {
	for _, rec := range f.recs {
		if rec.JobID == jobID && rec.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicantStore) List(filter dbmodels.ApplicationFilter, jobAuthorID, candidateID string) ([]dbmodels.JobApplication, int64, error) {
	return nil, 0, nil
}

func (f *fakeApplicantStore) ListForExport(filter dbmodels.ApplicationFilter, jobAuthorID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeApplicantStore) CountByStatuses(jobID string) (map[string]int64, error) {
	return nil, nil
}

type fakeLogStore struct {
	saved   []dbmodels.ApplicationStatusLog
	saveErr error
}

func (f *fakeLogStore) Save(rec dbmodels.ApplicationStatusLog) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, rec)
	return uuid.NewString(), nil
}

func (f *fakeLogStore) ListByApplication(applicationID string) ([]dbmodels.ApplicationStatusLog, error) {
	return f.saved, nil
}

type userStoreStub struct {
	usersstore.Provider
}

func (s userStoreStub) GetByID(id string) (*dbmodels.User, error) {
	return nil, nil
}

type notifyCounter struct {
	notificationhandler.Provider
	sent []models.NotificationData
}

func (s *notifyCounter) Notify(userID string, data models.NotificationData) {
	s.sent = append(s.sent, data)
}

func (s *notifyCounter) List(userID string, onlyUnread bool, pagination apimodels.Pagination) ([]notificationapimodels.NotificationView, int64, error) {
	return nil, 0, nil
}

func seedApplication(store *fakeApplicantStore, recruiterID string, status models.ApplicationStatus) *dbmodels.JobApplication {
	rec := &dbmodels.JobApplication{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		JobID:       uuid.NewString(),
		CandidateID: uuid.NewString(),
		Status:      status,
		Job: &dbmodels.Job{
			BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
			Name:      "Go разработчик",
			AuthorID:  recruiterID,
		},
	}
	rec.StatusUpdatedAt = time.Now()
	store.recs[rec.ID] = rec
	return rec
}

func TestChangeStatus(t *testing.T) {
	recruiterID := uuid.NewString()

	newHandler := func(store *fakeApplicantStore, logStore *fakeLogStore) impl {
		return impl{
			store:     store,
			logStore:  logStore,
			userStore: userStoreStub{},
		}
	}

	t.Run(`reject from applied is terminal check`, func(t *testing.T) {
		notify := &notifyCounter{}
		notificationhandler.Instance = notify
		store := newFakeApplicantStore()
		logStore := &fakeLogStore{}
		handler := newHandler(store, logStore)
		rec := seedApplication(store, recruiterID, models.ApplicationStatusApplied)

		err := handler.Reject(rec.ID, recruiterID, "не хватает опыта")
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusRejected, store.recs[rec.ID].Status)
		require.Equal(t, "не хватает опыта", store.recs[rec.ID].RejectionReason)
		require.Len(t, logStore.saved, 1)

		// из финального статуса переходы запрещены
		for _, next := range models.ApplicationStatusList {
			err = handler.ChangeStatus(rec.ID, recruiterID, applicantapimodels.StatusChangeRequest{Status: next})
			require.Error(t, err)
		}
		require.Equal(t, models.ApplicationStatusRejected, store.recs[rec.ID].Status)
	})

	t.Run(`illegal transition leaves record unchanged check`, func(t *testing.T) {
		notificationhandler.Instance = &notifyCounter{}
		store := newFakeApplicantStore()
		logStore := &fakeLogStore{}
		handler := newHandler(store, logStore)
		rec := seedApplication(store, recruiterID, models.ApplicationStatusApplied)

		err := handler.ChangeStatus(rec.ID, recruiterID, applicantapimodels.StatusChangeRequest{Status: models.ApplicationStatusOfferSent})
		require.Error(t, err)
		require.Equal(t, models.ApplicationStatusApplied, store.recs[rec.ID].Status)
		require.Empty(t, logStore.saved)
	})

	t.Run(`history write failure does not roll back transition check`, func(t *testing.T) {
		notify := &notifyCounter{}
		notificationhandler.Instance = notify
		store := newFakeApplicantStore()
		logStore := &fakeLogStore{saveErr: errors.New("БД недоступна")}
		handler := newHandler(store, logStore)
		rec := seedApplication(store, recruiterID, models.ApplicationStatusApplied)

		err := handler.ChangeStatus(rec.ID, recruiterID, applicantapimodels.StatusChangeRequest{Status: models.ApplicationStatusScreening})
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusScreening, store.recs[rec.ID].Status)
		// уведомление уходит несмотря на сбой записи истории
		require.Len(t, notify.sent, 1)
	})

	t.Run(`foreign recruiter check`, func(t *testing.T) {
		notificationhandler.Instance = &notifyCounter{}
		store := newFakeApplicantStore()
		handler := newHandler(store, &fakeLogStore{})
		rec := seedApplication(store, recruiterID, models.ApplicationStatusApplied)

		err := handler.ChangeStatus(rec.ID, uuid.NewString(), applicantapimodels.StatusChangeRequest{Status: models.ApplicationStatusScreening})
		require.Error(t, err)
		require.Equal(t, models.ApplicationStatusApplied, store.recs[rec.ID].Status)
	})

	t.Run(`withdraw only on early stages check`, func(t *testing.T) {
		notificationhandler.Instance = &notifyCounter{}
		store := newFakeApplicantStore()
		handler := newHandler(store, &fakeLogStore{})
		rec := seedApplication(store, recruiterID, models.ApplicationStatusInterviewScheduled)

		err := handler.Withdraw(rec.ID, rec.CandidateID)
		require.Error(t, err)
		require.Equal(t, models.ApplicationStatusInterviewScheduled, store.recs[rec.ID].Status)
	})
}
