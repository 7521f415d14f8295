package screeninghandler

import (
	"context"
	"fmt"
	"hr-recruit-backend/config"
	"hr-recruit-backend/db"
	applicanthandler "hr-recruit-backend/lib/applicant"
	yagptclient "hr-recruit-backend/lib/gpt/yagpt-client"
	notificationhandler "hr-recruit-backend/lib/notification"
	screeningstore "hr-recruit-backend/lib/screening/store"
	"hr-recruit-backend/models"
	screeningapimodels "hr-recruit-backend/models/api/screening"
	dbmodels "hr-recruit-backend/models/db"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Start(ctx context.Context, candidateID string, req screeningapimodels.StartRequest) (*screeningapimodels.SessionView, error)
	SubmitMessage(ctx context.Context, sessionID, candidateID, text string) (*screeningapimodels.ReplyView, error)
	Complete(ctx context.Context, sessionID, candidateID string) (*screeningapimodels.SummaryView, error)
	GetSession(sessionID, userID string, isStaff bool) (*screeningapimodels.SessionView, error)
	GetSummary(applicationID, userID string) (*screeningapimodels.SummaryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: screeningstore.NewInstance(db.DB),
		gptClient: yagptclient.NewClient(
			config.Conf.YandexGPT.ApiKey,
			config.Conf.YandexGPT.FolderID,
			config.Conf.YandexGPT.MaxTokens,
		),
	}
}

type impl struct {
	store     screeningstore.Provider
	gptClient yagptclient.Provider
}

const systemPromtTpl = `Ты — ИИ-рекрутер. Проводишь первичный скрининг кандидата на вакансию «%v».
Задавай вопросы по одному, дожидаясь ответа кандидата. Список вопросов:
%v
После последнего ответа поблагодари кандидата и сообщи, что скрининг завершён.
Будь вежлив и краток.`

const verdictPromt = `Скрининг завершён. Составь заключение по кандидату строго в формате json:
{"score": <число 0-100>, "summary": "<краткое резюме>", "recommendation": "<рекомендация рекрутеру>", "strengths": ["..."], "red_flags": ["..."]}
Никакого текста вне json.`

func (i impl) Start(ctx context.Context, candidateID string, req screeningapimodels.StartRequest) (*screeningapimodels.SessionView, error) {
	application, err := applicanthandler.Instance.GetRec(req.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil || application.CandidateID != candidateID {
		return nil, errors.New("отклик не найден")
	}
	if application.Job == nil || !application.Job.AiScreeningEnabled {
		return nil, errors.New("по данной вакансии ИИ-скрининг не предусмотрен")
	}
	if application.AiScreeningCompleted {
		return nil, errors.New("скрининг по отклику уже пройден")
	}
	active, err := i.store.GetActiveByApplication(req.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки активной сессии")
	}
	if active != nil {
		return nil, errors.New("по отклику уже есть активная сессия скрининга")
	}
	if application.Status == models.ApplicationStatusApplied {
		err = applicanthandler.Instance.SetStatusBySystem(application.ID, models.ApplicationStatusScreening, "запущен ИИ-скрининг")
		if err != nil {
			return nil, err
		}
	} else if application.Status != models.ApplicationStatusScreening {
		return nil, errors.New("скрининг недоступен на текущем этапе отклика")
	}
	questions := application.Job.ScreeningQuestions
	rec := dbmodels.ChatSession{
		ApplicationID:  application.ID,
		CandidateID:    candidateID,
		JobID:          application.JobID,
		Status:         models.SessionStatusActive,
		QuestionsTotal: len(questions),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания сессии скрининга")
	}
	systemPromt := fmt.Sprintf(systemPromtTpl, application.Job.Name, formatQuestions(questions))
	if err = i.store.AppendMessage(id, models.ChatRoleSystem, systemPromt); err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения сообщения")
	}
	greeting, err := i.gptClient.Chat(ctx, []yagptclient.Message{{Role: models.ChatRoleSystem, Text: systemPromt}})
	if err != nil {
		i.markError(id, err)
		return nil, err
	}
	if err = i.store.AppendMessage(id, models.ChatRoleAssistant, greeting); err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения сообщения")
	}
	sess, err := i.store.GetByID(id)
	if err != nil || sess == nil {
		return nil, errors.Wrap(err, "ошибка получения сессии скрининга")
	}
	log.
		WithField("session_id", id).
		WithField("application_id", application.ID).
		Info("Запущена сессия ИИ-скрининга")
	view := sessionViewForCandidate(*sess)
	return &view, nil
}

func (i impl) SubmitMessage(ctx context.Context, sessionID, candidateID, text string) (*screeningapimodels.ReplyView, error) {
	sess, err := i.getOwnedSession(sessionID, candidateID)
	if err != nil {
		return nil, err
	}
	if !sess.IsActive() {
		return nil, errors.New("сессия скрининга уже завершена")
	}
	history := toGptHistory(sess.Messages)
	history = append(history, yagptclient.Message{Role: models.ChatRoleCandidate, Text: text})
	reply, err := i.gptClient.Chat(ctx, history)
	if err != nil {
		// при сбое провайдера реплика не сохраняется, кандидат может отправить её повторно
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка обращения к модели")
		return nil, err
	}
	if err = i.store.AppendTurn(sessionID, text, reply); err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения сообщения")
	}
	return &screeningapimodels.ReplyView{Reply: reply}, nil
}

// Complete идемпотентно: повторный вызов по завершённой сессии возвращает сохранённое заключение
func (i impl) Complete(ctx context.Context, sessionID, candidateID string) (*screeningapimodels.SummaryView, error) {
	sess, err := i.getOwnedSession(sessionID, candidateID)
	if err != nil {
		return nil, err
	}
	if sess.IsCompleted() {
		view := screeningapimodels.SummaryConvert(*sess)
		return &view, nil
	}
	if !sess.IsActive() {
		return nil, errors.New("сессия скрининга завершена с ошибкой")
	}
	history := toGptHistory(sess.Messages)
	history = append(history, yagptclient.Message{Role: models.ChatRoleSystem, Text: verdictPromt})
	// при сбое провайдера или негодном заключении сессия остаётся активной,
	// завершение можно запросить повторно
	raw, err := i.gptClient.Chat(ctx, history)
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка обращения к модели")
		return nil, err
	}
	verdict, err := parseVerdict(raw)
	if err != nil {
		return nil, err
	}
	// итоги пишутся в отклик до закрытия сессии: при сбое сессия остаётся
	// активной и завершение можно запросить повторно
	err = applicanthandler.Instance.SaveScreeningResult(sess.ApplicationID, verdict.Score, verdict.Summary)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = i.store.Update(sessionID, map[string]interface{}{
		"status":         models.SessionStatusCompleted,
		"overall_score":  verdict.Score,
		"summary":        verdict.Summary,
		"recommendation": verdict.Recommendation,
		"strengths":      pqArray(verdict.Strengths),
		"red_flags":      pqArray(verdict.RedFlags),
		"completed_at":   &now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка завершения сессии скрининга")
	}
	i.notifyScreeningCompleted(sess, verdict)
	log.
		WithField("session_id", sessionID).
		WithField("score", verdict.Score).
		Info("Сессия ИИ-скрининга завершена")
	updated, err := i.store.GetByID(sessionID)
	if err != nil || updated == nil {
		return nil, errors.Wrap(err, "ошибка получения сессии скрининга")
	}
	view := screeningapimodels.SummaryConvert(*updated)
	return &view, nil
}

func (i impl) GetSession(sessionID, userID string, isStaff bool) (*screeningapimodels.SessionView, error) {
	sess, err := i.store.GetByID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сессии скрининга")
	}
	if sess == nil {
		return nil, errors.New("сессия скрининга не найдена")
	}
	if isStaff {
		application, err := applicanthandler.Instance.GetRec(sess.ApplicationID)
		if err != nil {
			return nil, err
		}
		if application == nil || application.Job == nil || application.Job.AuthorID != userID {
			return nil, errors.New("сессия скрининга не найдена")
		}
		view := screeningapimodels.SessionConvert(*sess, true)
		return &view, nil
	}
	if sess.CandidateID != userID {
		return nil, errors.New("сессия скрининга не найдена")
	}
	view := sessionViewForCandidate(*sess)
	return &view, nil
}

func (i impl) GetSummary(applicationID, userID string) (*screeningapimodels.SummaryView, error) {
	application, err := applicanthandler.Instance.GetRec(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil || application.Job == nil || application.Job.AuthorID != userID {
		return nil, errors.New("отклик не найден")
	}
	sess, err := i.store.GetLastByApplication(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сессии скрининга")
	}
	if sess == nil || !sess.IsCompleted() {
		return nil, errors.New("скрининг по отклику не завершён")
	}
	view := screeningapimodels.SummaryConvert(*sess)
	return &view, nil
}

func (i impl) getOwnedSession(sessionID, candidateID string) (*dbmodels.ChatSession, error) {
	sess, err := i.store.GetByID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сессии скрининга")
	}
	if sess == nil || sess.CandidateID != candidateID {
		return nil, errors.New("сессия скрининга не найдена")
	}
	return sess, nil
}

func (i impl) markError(sessionID string, cause error) {
	log.
		WithField("session_id", sessionID).
		WithError(cause).
		Error("сессия скрининга завершена с ошибкой")
	err := i.store.Update(sessionID, map[string]interface{}{
		"status": models.SessionStatusError,
	})
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка обновления статуса сессии")
	}
}

// notifyScreeningCompleted уведомление рекрутеру, отправка не влияет на результат завершения
func (i impl) notifyScreeningCompleted(sess *dbmodels.ChatSession, verdict *Verdict) {
	logger := log.WithField("application_id", sess.ApplicationID)
	application, err := applicanthandler.Instance.GetRec(sess.ApplicationID)
	if err != nil || application == nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return
	}
	if application.Job != nil {
		candidateName := ""
		if application.Candidate != nil {
			candidateName = application.Candidate.GetFullName()
		}
		notificationhandler.Instance.Notify(application.Job.AuthorID,
			models.GetNotifyScreeningCompleted(candidateName, application.Job.Name, verdict.Score))
	}
}

// sessionViewForCandidate кандидату не показываем системные инструкции
func sessionViewForCandidate(sess dbmodels.ChatSession) screeningapimodels.SessionView {
	filtered := make([]dbmodels.ChatMessage, 0, len(sess.Messages))
	for _, msg := range sess.Messages {
		if msg.Role == models.ChatRoleSystem {
			continue
		}
		filtered = append(filtered, msg)
	}
	sess.Messages = filtered
	return screeningapimodels.SessionConvert(sess, true)
}

func toGptHistory(messages []dbmodels.ChatMessage) []yagptclient.Message {
	history := make([]yagptclient.Message, 0, len(messages)+1)
	for _, msg := range messages {
		history = append(history, yagptclient.Message{Role: msg.Role, Text: msg.Text})
	}
	return history
}

func formatQuestions(questions []string) string {
	if len(questions) == 0 {
		return "Вопросы не заданы, уточни ключевой опыт кандидата по теме вакансии."
	}
	sb := strings.Builder{}
	for n, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", n+1, q))
	}
	return sb.String()
}

func pqArray(list []string) pq.StringArray {
	return pq.StringArray(list)
}
