package screeningstore

import (
	"database/sql"
	"hr-recruit-backend/lib/utils/helpers"
	"hr-recruit-backend/models"
	dbmodels "hr-recruit-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ChatSession) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.ChatSession, error)
	GetActiveByApplication(applicationID string) (*dbmodels.ChatSession, error)
	GetLastByApplication(applicationID string) (*dbmodels.ChatSession, error)
	AppendMessage(sessionID string, role models.ChatRole, text string) error
	AppendTurn(sessionID, candidateText, assistantText string) error
	AvgScoreByJob(jobID string) (*float64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ChatSession) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
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
		Model(&dbmodels.ChatSession{}).
		Where("id = ?", id).
		Updates(updMap)
	return helpers.UpdateResult(tx)
}

func (i impl) GetByID(id string) (*dbmodels.ChatSession, error) {
	rec := dbmodels.ChatSession{}
	err := i.db.
		Model(&dbmodels.ChatSession{}).
		Where("id = ?", id).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.created_at")
		}).
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

func (i impl) GetActiveByApplication(applicationID string) (*dbmodels.ChatSession, error) {
	rec := dbmodels.ChatSession{}
	err := i.db.
		Model(&dbmodels.ChatSession{}).
		Where("application_id = ?", applicationID).
		Where("status = ?", models.SessionStatusActive).
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

func (i impl) GetLastByApplication(applicationID string) (*dbmodels.ChatSession, error) {
	rec := dbmodels.ChatSession{}
	err := i.db.
		Model(&dbmodels.ChatSession{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.created_at")
		}).
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

// AppendMessage сообщение сохраняется только пока сессия активна, повторная вставка при гонке исключена транзакцией
func (i impl) AppendMessage(sessionID string, role models.ChatRole, text string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		sess := dbmodels.ChatSession{}
		err := tx.
			Model(&dbmodels.ChatSession{}).
			Where("id = ?", sessionID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sess).
			Error
		if err != nil {
			return err
		}
		if !sess.IsActive() {
			return errors.New("сессия скрининга уже завершена")
		}
		msg := dbmodels.ChatMessage{
			SessionID: sessionID,
			Role:      role,
			Text:      text,
		}
		if err = tx.Create(&msg).Error; err != nil {
			return err
		}
		if role == models.ChatRoleCandidate {
			return tx.
				Model(&dbmodels.ChatSession{}).
				Where("id = ?", sessionID).
				UpdateColumn("questions_answered", gorm.Expr("questions_answered + 1")).
				Error
		}
		return nil
	})
}

// AppendTurn реплика кандидата и ответ модели сохраняются одной транзакцией,
// при сбое в сессию не попадает половина обмена
func (i impl) AppendTurn(sessionID, candidateText, assistantText string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		sess := dbmodels.ChatSession{}
		err := tx.
			Model(&dbmodels.ChatSession{}).
			Where("id = ?", sessionID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sess).
			Error
		if err != nil {
			return err
		}
		if !sess.IsActive() {
			return errors.New("сессия скрининга уже завершена")
		}
		turn := []dbmodels.ChatMessage{
			{SessionID: sessionID, Role: models.ChatRoleCandidate, Text: candidateText},
			{SessionID: sessionID, Role: models.ChatRoleAssistant, Text: assistantText},
		}
		for n := range turn {
			if err = tx.Create(&turn[n]).Error; err != nil {
				return err
			}
		}
		return tx.
			Model(&dbmodels.ChatSession{}).
			Where("id = ?", sessionID).
			UpdateColumn("questions_answered", gorm.Expr("questions_answered + 1")).
			Error
	})
}

func (i impl) AvgScoreByJob(jobID string) (*float64, error) {
	var avg sql.NullFloat64
	tx := i.db.
		Model(&dbmodels.ChatSession{}).
		Select("avg(overall_score)").
		Where("status = ?", models.SessionStatusCompleted)
	if jobID != "" {
		tx.Where("job_id = ?", jobID)
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
