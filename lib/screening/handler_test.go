package screeninghandler

import (
	"context"
	applicanthandler "hr-recruit-backend/lib/applicant"
	yagptclient "hr-recruit-backend/lib/gpt/yagpt-client"
	notificationhandler "hr-recruit-backend/lib/notification"
	"hr-recruit-backend/models"
	screeningapimodels "hr-recruit-backend/models/api/screening"
	dbmodels "hr-recruit-backend/models/db"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	sessions map[string]*dbmodels.ChatSession
	messages map[string][]dbmodels.ChatMessage
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: map[string]*dbmodels.ChatSession{},
		messages: map[string][]dbmodels.ChatMessage{},
	}
}

func (f *fakeStore) Create(rec dbmodels.ChatSession) (string, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	f.sessions[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	sess, ok := f.sessions[id]
	if !ok {
		return errors.New("запись не найдена")
	}
	if status, ok := updMap["status"]; ok {
		sess.Status = status.(models.SessionStatus)
	}
	if score, ok := updMap["overall_score"]; ok {
		val := score.(float64)
		sess.OverallScore = &val
	}
	if summary, ok := updMap["summary"]; ok {
		sess.Summary = summary.(string)
	}
	if recommendation, ok := updMap["recommendation"]; ok {
		sess.Recommendation = recommendation.(string)
	}
	if completedAt, ok := updMap["completed_at"]; ok {
		sess.CompletedAt = completedAt.(*time.Time)
	}
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.ChatSession, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *sess
	copied.Messages = f.messages[id]
	return &copied, nil
}

func (f *fakeStore) GetActiveByApplication(applicationID string) (*dbmodels.ChatSession, error) {
	for _, sess := range f.sessions {
		if sess.ApplicationID == applicationID && sess.IsActive() {
			return sess, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetLastByApplication(applicationID string) (*dbmodels.ChatSession, error) {
	for _, sess := range f.sessions {
		if sess.ApplicationID == applicationID {
			copied := *sess
			copied.Messages = f.messages[sess.ID]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AppendMessage(sessionID string, role models.ChatRole, text string) error {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("запись не найдена")
	}
	if !sess.IsActive() {
		return errors.New("сессия скрининга уже завершена")
	}
	f.messages[sessionID] = append(f.messages[sessionID], dbmodels.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Text:      text,
	})
	if role == models.ChatRoleCandidate {
		sess.QuestionsAnswered++
	}
	return nil
}

func (f *fakeStore) AppendTurn(sessionID, candidateText, assistantText string) error {
	if err := f.AppendMessage(sessionID, models.ChatRoleCandidate, candidateText); err != nil {
		return err
	}
	return f.AppendMessage(sessionID, models.ChatRoleAssistant, assistantText)
}

func (f *fakeStore) AvgScoreByJob(jobID string) (*float64, error) {
	return nil, nil
}

type fakeGpt struct {
	replies []string
	err     error
	calls   int
}

func (f *fakeGpt) Chat(ctx context.Context, messages []yagptclient.Message) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

func (f *fakeGpt) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	return f.Chat(ctx, nil)
}

type applicantStub struct {
	applicanthandler.Provider
	rec          *dbmodels.JobApplication
	savedScore   *float64
	saveErr      error
	systemStatus models.ApplicationStatus
}

func (s *applicantStub) GetRec(id string) (*dbmodels.JobApplication, error) {
	if s.rec != nil && s.rec.ID == id {
		return s.rec, nil
	}
	return nil, nil
}

func (s *applicantStub) SetStatusBySystem(id string, newStatus models.ApplicationStatus, comment string) error {
	s.systemStatus = newStatus
	s.rec.Status = newStatus
	return nil
}

func (s *applicantStub) SaveScreeningResult(id string, score float64, summary string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.savedScore = &score
	return nil
}

type notifyStub struct {
	notificationhandler.Provider
}

func (s notifyStub) Notify(userID string, data models.NotificationData) {}

func testApplication(candidateID string) *dbmodels.JobApplication {
	return &dbmodels.JobApplication{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		JobID:       uuid.NewString(),
		CandidateID: candidateID,
		Status:      models.ApplicationStatusApplied,
		Job: &dbmodels.Job{
			Name:               "Go разработчик",
			AuthorID:           uuid.NewString(),
			AiScreeningEnabled: true,
			ScreeningQuestions: []string{"Расскажите об опыте с Go", "Какие проекты вели?"},
		},
	}
}

func TestScreeningSession(t *testing.T) {
	notificationhandler.Instance = notifyStub{}

	t.Run(`start and duplicate start check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		stub := &applicantStub{rec: testApplication(candidateID)}
		applicanthandler.Instance = stub
		store := newFakeStore()
		handler := impl{store: store, gptClient: &fakeGpt{replies: []string{"Здравствуйте! Расскажите об опыте с Go"}}}

		view, err := handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.Nil(t, err)
		require.Equal(t, string(models.SessionStatusActive), view.Status)
		require.Equal(t, models.ApplicationStatusScreening, stub.systemStatus)
		// системные инструкции кандидату не видны
		require.Len(t, view.Messages, 1)

		_, err = handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "активная сессия")
	})

	t.Run(`complete is idempotent check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		stub := &applicantStub{rec: testApplication(candidateID)}
		applicanthandler.Instance = stub
		store := newFakeStore()
		gpt := &fakeGpt{replies: []string{
			"Здравствуйте! Расскажите об опыте с Go",
			"Спасибо, скрининг завершён",
			`{"score": 80, "summary": "Хороший кандидат", "recommendation": "Пригласить"}`,
		}}
		handler := impl{store: store, gptClient: gpt}

		view, err := handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.Nil(t, err)
		_, err = handler.SubmitMessage(context.Background(), view.ID, candidateID, "Пишу на Go пять лет")
		require.Nil(t, err)

		summary, err := handler.Complete(context.Background(), view.ID, candidateID)
		require.Nil(t, err)
		require.Equal(t, float64(80), summary.Score)
		require.NotNil(t, stub.savedScore)
		require.Equal(t, float64(80), *stub.savedScore)
		callsAfterComplete := gpt.calls

		// повторное завершение не ходит в модель и возвращает сохранённое заключение
		summary, err = handler.Complete(context.Background(), view.ID, candidateID)
		require.Nil(t, err)
		require.Equal(t, float64(80), summary.Score)
		require.Equal(t, callsAfterComplete, gpt.calls)
	})

	t.Run(`application save failure keeps session retryable check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		stub := &applicantStub{rec: testApplication(candidateID)}
		applicanthandler.Instance = stub
		store := newFakeStore()
		gpt := &fakeGpt{replies: []string{
			"Здравствуйте! Расскажите об опыте с Go",
			`{"score": 65, "summary": "Нормальный кандидат", "recommendation": "Рассмотреть"}`,
			`{"score": 65, "summary": "Нормальный кандидат", "recommendation": "Рассмотреть"}`,
		}}
		handler := impl{store: store, gptClient: gpt}

		view, err := handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.Nil(t, err)

		// если итоги не записались в отклик, сессия не закрывается
		stub.saveErr = errors.New("БД недоступна")
		_, err = handler.Complete(context.Background(), view.ID, candidateID)
		require.NotNil(t, err)
		require.Equal(t, true, store.sessions[view.ID].IsActive())
		require.Nil(t, stub.savedScore)

		stub.saveErr = nil
		summary, err := handler.Complete(context.Background(), view.ID, candidateID)
		require.Nil(t, err)
		require.Equal(t, float64(65), summary.Score)
		require.NotNil(t, stub.savedScore)
		require.Equal(t, true, store.sessions[view.ID].IsCompleted())
	})

	t.Run(`provider error keeps transcript unchanged check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		stub := &applicantStub{rec: testApplication(candidateID)}
		applicanthandler.Instance = stub
		store := newFakeStore()
		gpt := &fakeGpt{replies: []string{"Здравствуйте! Расскажите об опыте с Go"}}
		handler := impl{store: store, gptClient: gpt}

		view, err := handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.Nil(t, err)
		messagesBefore := len(store.messages[view.ID])

		gpt.err = errors.New("таймаут запроса к модели")
		_, err = handler.SubmitMessage(context.Background(), view.ID, candidateID, "Пишу на Go пять лет")
		require.NotNil(t, err)
		// неудачный обмен не попадает в переписку, сессия остаётся активной
		require.Len(t, store.messages[view.ID], messagesBefore)
		require.Equal(t, true, store.sessions[view.ID].IsActive())

		gpt.err = nil
		gpt.replies = []string{"Спасибо, принял"}
		_, err = handler.SubmitMessage(context.Background(), view.ID, candidateID, "Пишу на Go пять лет")
		require.Nil(t, err)
		require.Len(t, store.messages[view.ID], messagesBefore+2)
	})

	t.Run(`no messages after complete check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		stub := &applicantStub{rec: testApplication(candidateID)}
		applicanthandler.Instance = stub
		store := newFakeStore()
		gpt := &fakeGpt{replies: []string{
			"Здравствуйте!",
			`{"score": 50, "summary": "ok"}`,
		}}
		handler := impl{store: store, gptClient: gpt}

		view, err := handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.Nil(t, err)
		_, err = handler.Complete(context.Background(), view.ID, candidateID)
		require.Nil(t, err)

		_, err = handler.SubmitMessage(context.Background(), view.ID, candidateID, "ещё сообщение")
		require.NotNil(t, err)
	})

	t.Run(`unknown session check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		applicanthandler.Instance = &applicantStub{}
		handler := impl{store: newFakeStore(), gptClient: &fakeGpt{replies: []string{""}}}

		_, err := handler.SubmitMessage(context.Background(), uuid.NewString(), candidateID, "привет")
		require.NotNil(t, err)
		_, err = handler.Complete(context.Background(), uuid.NewString(), candidateID)
		require.NotNil(t, err)
	})

	t.Run(`screening disabled check`, func(t *testing.T) {
		candidateID := uuid.NewString()
		stub := &applicantStub{rec: testApplication(candidateID)}
		stub.rec.Job.AiScreeningEnabled = false
		applicanthandler.Instance = stub
		handler := impl{store: newFakeStore(), gptClient: &fakeGpt{replies: []string{""}}}

		_, err := handler.Start(context.Background(), candidateID, screeningapimodels.StartRequest{ApplicationID: stub.rec.ID})
		require.NotNil(t, err)
	})
}
