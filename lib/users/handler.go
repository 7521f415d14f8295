package usershandler

import (
	"hr-recruit-backend/db"
	authutils "hr-recruit-backend/lib/utils/auth-utils"
	usersstore "hr-recruit-backend/lib/users/store"
	authapimodels "hr-recruit-backend/models/api/auth"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(req authapimodels.RegisterRequest) (*authapimodels.TokenResponse, error)
	Login(req authapimodels.LoginRequest) (*authapimodels.TokenResponse, error)
	Refresh(refreshToken string) (*authapimodels.TokenResponse, error)
	GetByID(id string) (*dbmodels.User, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Register(req authapimodels.RegisterRequest) (*authapimodels.TokenResponse, error) {
	exist, err := i.store.ExistByEmail(req.Email)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки почты")
	}
	if exist {
		return nil, errors.New("пользователь с такой почтой уже зарегистрирован")
	}
	rec := dbmodels.User{
		Email:       req.Email,
		Password:    authutils.GetMD5Hash(req.Password),
		Role:        req.Role,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		IsActive:    true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания пользователя")
	}
	rec.ID = id
	log.
		WithField("user_id", id).
		Info("Зарегистрирован новый пользователь")
	return i.buildTokens(rec)
}

func (i impl) Login(req authapimodels.LoginRequest) (*authapimodels.TokenResponse, error) {
	rec, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil || rec.Password != authutils.GetMD5Hash(req.Password) {
		return nil, errors.New("неверная почта или пароль")
	}
	if !rec.IsActive {
		return nil, errors.New("пользователь заблокирован")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.
			WithField("user_id", rec.ID).
			WithError(err).
			Error("ошибка обновления времени входа")
	}
	return i.buildTokens(*rec)
}

func (i impl) Refresh(refreshToken string) (*authapimodels.TokenResponse, error) {
	userID, err := authutils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.New("невалидный refresh токен")
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil || !rec.IsActive {
		return nil, errors.New("пользователь не найден или заблокирован")
	}
	return i.buildTokens(*rec)
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	return i.store.GetByID(id)
}

func (i impl) buildTokens(rec dbmodels.User) (*authapimodels.TokenResponse, error) {
	accessToken, err := authutils.GetToken(rec.ID, rec.GetFullName(), rec.Role)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка генерации токена")
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.GetFullName())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка генерации refresh токена")
	}
	return &authapimodels.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         string(rec.Role),
		UserID:       rec.ID,
	}, nil
}
