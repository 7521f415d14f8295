package offerhandler

import (
	"context"
	"hr-recruit-backend/db"
	applicanthandler "hr-recruit-backend/lib/applicant"
	pdfexport "hr-recruit-backend/lib/export/pdf"
	filestorage "hr-recruit-backend/lib/file-storage"
	notificationhandler "hr-recruit-backend/lib/notification"
	offerstore "hr-recruit-backend/lib/offer/store"
	"hr-recruit-backend/lib/smtp"
	"hr-recruit-backend/models"
	offerapimodels "hr-recruit-backend/models/api/offer"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, req offerapimodels.CreateRequest) (*offerapimodels.OfferView, error)
	Send(ctx context.Context, id, userID string) error
	Respond(id, candidateID string, req offerapimodels.RespondRequest) error
	Get(id, userID string, isStaff bool) (*offerapimodels.OfferView, error)
	GetByApplication(applicationID, userID string, isStaff bool) (*offerapimodels.OfferView, error)
	GetPdf(ctx context.Context, id, userID string, isStaff bool) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: offerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store offerstore.Provider
}

func (i impl) Create(userID string, req offerapimodels.CreateRequest) (*offerapimodels.OfferView, error) {
	application, err := applicanthandler.Instance.GetRec(req.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil || application.Job == nil || application.Job.AuthorID != userID {
		return nil, errors.New("отклик не найден")
	}
	if !application.Status.CanTransit(models.ApplicationStatusOfferSent) {
		return nil, errors.New("оффер недоступен на текущем этапе отклика")
	}
	existing, err := i.store.GetByApplication(req.ApplicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки оффера")
	}
	if existing != nil && existing.Status != models.OfferStatusRejected {
		return nil, errors.New("по отклику уже есть оффер")
	}
	rec := dbmodels.Offer{
		ApplicationID: req.ApplicationID,
		Position:      req.Position,
		Salary:        req.Salary,
		Currency:      req.Currency,
		StartDate:     req.StartDate,
		ValidUntil:    req.ValidUntil,
		Status:        models.OfferStatusDraft,
	}
	if rec.Currency == "" {
		rec.Currency = "RUB"
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания оффера")
	}
	log.
		WithField("offer_id", id).
		WithField("application_id", req.ApplicationID).
		Info("Создан оффер")
	return i.getView(id)
}

// Send формирует pdf, отправляет кандидату письмо с вложением и двигает отклик в offer_sent
func (i impl) Send(ctx context.Context, id, userID string) error {
	rec, err := i.getOwned(id, userID)
	if err != nil {
		return err
	}
	if rec.Status != models.OfferStatusDraft {
		return errors.New("оффер уже отправлен")
	}
	application := rec.Application
	if application == nil || application.Job == nil || application.Candidate == nil {
		return errors.New("по офферу не найден отклик")
	}
	companyName := ""
	if application.Job.Author != nil {
		companyName = application.Job.Author.CompanyName
	}
	pdfData := pdfexport.OfferData{
		CompanyName:   companyName,
		CandidateName: application.Candidate.GetFullName(),
		JobName:       application.Job.Name,
		Position:      rec.Position,
		Salary:        rec.Salary,
		Currency:      rec.Currency,
		StartDate:     rec.StartDate,
		ValidUntil:    rec.ValidUntil,
	}
	pdfFile, err := pdfexport.GenerateOffer(pdfData)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования pdf оффера")
	}
	fileID, err := filestorage.Instance.UploadOfferPdf(ctx, userID, rec.ID, pdfFile)
	if err != nil {
		return err
	}
	err = applicanthandler.Instance.SetStatusBySystem(application.ID, models.ApplicationStatusOfferSent, "направлен оффер")
	if err != nil {
		return err
	}
	now := time.Now()
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status":      models.OfferStatusSent,
		"sent_at":     &now,
		"pdf_file_id": fileID,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления оффера")
	}
	err = smtp.Instance.SendEMailWithAttachment(
		application.Candidate.Email,
		models.GetNotifyOfferSent(application.Job.Name).Msg,
		"Предложение о работе",
		"offer.pdf",
		pdfFile,
	)
	if err != nil {
		log.
			WithField("offer_id", rec.ID).
			WithError(err).
			Error("ошибка отправки письма с оффером")
	}
	notificationhandler.Instance.Notify(application.CandidateID, models.GetNotifyOfferSent(application.Job.Name))
	log.
		WithField("offer_id", rec.ID).
		Info("Оффер отправлен кандидату")
	return nil
}

func (i impl) Respond(id, candidateID string, req offerapimodels.RespondRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения оффера")
	}
	if rec == nil || rec.Application == nil || rec.Application.CandidateID != candidateID {
		return errors.New("оффер не найден")
	}
	if rec.Status != models.OfferStatusSent {
		return errors.New("ответ по офферу уже дан")
	}
	if rec.ValidUntil != nil && rec.ValidUntil.Before(time.Now()) {
		return errors.New("срок действия оффера истёк")
	}
	offerStatus := models.OfferStatusRejected
	applicationStatus := models.ApplicationStatusOfferRejected
	if req.Accept {
		offerStatus = models.OfferStatusAccepted
		applicationStatus = models.ApplicationStatusOfferAccepted
	}
	err = applicanthandler.Instance.SetStatusBySystem(rec.ApplicationID, applicationStatus, req.Note)
	if err != nil {
		return err
	}
	now := time.Now()
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status":        offerStatus,
		"responded_at":  &now,
		"response_note": req.Note,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления оффера")
	}
	if req.Accept {
		// принятый оффер сразу переводит отклик в "принят на работу"
		err = applicanthandler.Instance.SetStatusBySystem(rec.ApplicationID, models.ApplicationStatusHired, "оффер принят")
		if err != nil {
			log.
				WithField("offer_id", rec.ID).
				WithError(err).
				Error("ошибка перевода отклика в статус найма")
		}
	}
	if rec.Application.Job != nil {
		candidateName := ""
		if rec.Application.Candidate != nil {
			candidateName = rec.Application.Candidate.GetFullName()
		}
		notificationhandler.Instance.Notify(rec.Application.Job.AuthorID,
			models.GetNotifyOfferResponse(candidateName, rec.Application.Job.Name, offerStatus))
	}
	log.
		WithField("offer_id", rec.ID).
		WithField("offer_status", offerStatus).
		Info("Получен ответ кандидата по офферу")
	return nil
}

func (i impl) Get(id, userID string, isStaff bool) (*offerapimodels.OfferView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оффера")
	}
	if rec == nil || !isAllowed(rec, userID, isStaff) {
		return nil, errors.New("оффер не найден")
	}
	if !isStaff && rec.Status == models.OfferStatusDraft {
		return nil, errors.New("оффер не найден")
	}
	view := offerapimodels.OfferConvert(*rec)
	return &view, nil
}

func (i impl) GetByApplication(applicationID, userID string, isStaff bool) (*offerapimodels.OfferView, error) {
	rec, err := i.store.GetByApplication(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оффера")
	}
	if rec == nil || !isAllowed(rec, userID, isStaff) {
		return nil, errors.New("оффер не найден")
	}
	if !isStaff && rec.Status == models.OfferStatusDraft {
		return nil, errors.New("оффер не найден")
	}
	view := offerapimodels.OfferConvert(*rec)
	return &view, nil
}

func (i impl) GetPdf(ctx context.Context, id, userID string, isStaff bool) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оффера")
	}
	if rec == nil || !isAllowed(rec, userID, isStaff) {
		return nil, errors.New("оффер не найден")
	}
	if rec.PdfFileID == "" {
		return nil, errors.New("pdf оффера не сформирован")
	}
	data, _, err := filestorage.Instance.GetFile(ctx, rec.PdfFileID)
	return data, err
}

func (i impl) getView(id string) (*offerapimodels.OfferView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil || rec == nil {
		return nil, errors.Wrap(err, "ошибка получения оффера")
	}
	view := offerapimodels.OfferConvert(*rec)
	return &view, nil
}

func (i impl) getOwned(id, userID string) (*dbmodels.Offer, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оффера")
	}
	if rec == nil || rec.Application == nil || rec.Application.Job == nil || rec.Application.Job.AuthorID != userID {
		return nil, errors.New("оффер не найден")
	}
	return rec, nil
}

func isAllowed(rec *dbmodels.Offer, userID string, isStaff bool) bool {
	if rec.Application == nil {
		return false
	}
	if isStaff {
		return rec.Application.Job != nil && rec.Application.Job.AuthorID == userID
	}
	return rec.Application.CandidateID == userID
}
