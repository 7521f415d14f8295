package jobapimodels

import (
	"hr-recruit-backend/models"
	apimodels "hr-recruit-backend/models/api"
	dbmodels "hr-recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type JobData struct {
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Requirements       string                 `json:"requirements"`
	Employment         models.EmploymentType  `json:"employment"`
	Experience         models.ExperienceLevel `json:"experience"`
	WorkLocation       models.WorkLocation    `json:"work_location"`
	City               string                 `json:"city"`
	SalaryFrom         int                    `json:"salary_from"`
	SalaryTo           int                    `json:"salary_to"`
	Currency           string                 `json:"currency"`
	Deadline           *time.Time             `json:"deadline,omitempty"`
	MaxApplications    int                    `json:"max_applications"`
	AiScreeningEnabled bool                   `json:"ai_screening_enabled"`
	ScreeningQuestions []string               `json:"screening_questions"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название вакансии")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("не указано описание вакансии")
	}
	if r.SalaryFrom < 0 || r.SalaryTo < 0 {
		return errors.New("зарплата не может быть отрицательной")
	}
	if r.SalaryTo != 0 && r.SalaryFrom > r.SalaryTo {
		return errors.New("нижняя граница зарплаты больше верхней")
	}
	if r.MaxApplications < 0 {
		return errors.New("лимит откликов не может быть отрицательным")
	}
	return nil
}

type JobFilter struct {
	Search       string                 `json:"search"`
	City         string                 `json:"city"`
	Employment   models.EmploymentType  `json:"employment"`
	Experience   models.ExperienceLevel `json:"experience"`
	WorkLocation models.WorkLocation    `json:"work_location"`
	SalaryFrom   int                    `json:"salary_from"`
	OnlyMy       bool                   `json:"only_my"` // только вакансии текущего рекрутера
	apimodels.Pagination
}

func JobConvert(rec dbmodels.Job, withQuestions bool) JobView {
	view := JobView{
		ID:                 rec.ID,
		Name:               rec.Name,
		Description:        rec.Description,
		Requirements:       rec.Requirements,
		Employment:         rec.Employment.ToHuman(),
		Experience:         string(rec.Experience),
		WorkLocation:       string(rec.WorkLocation),
		City:               rec.City,
		SalaryFrom:         rec.SalaryFrom,
		SalaryTo:           rec.SalaryTo,
		Currency:           rec.Currency,
		IsPublished:        rec.IsPublished,
		PublishedAt:        rec.PublishedAt,
		Deadline:           rec.Deadline,
		AiScreeningEnabled: rec.AiScreeningEnabled,
		ViewCount:          rec.ViewCount,
		ApplicationCount:   rec.ApplicationCount,
		CreatedAt:          rec.CreatedAt,
	}
	if withQuestions {
		view.ScreeningQuestions = rec.ScreeningQuestions
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
		view.CompanyName = rec.Author.CompanyName
	}
	return view
}

type JobView struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	Employment         string     `json:"employment"`
	Experience         string     `json:"experience"`
	WorkLocation       string     `json:"work_location"`
	City               string     `json:"city"`
	SalaryFrom         int        `json:"salary_from"`
	SalaryTo           int        `json:"salary_to"`
	Currency           string     `json:"currency"`
	IsPublished        bool       `json:"is_published"`
	PublishedAt        *time.Time `json:"published_at,omitempty"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	AiScreeningEnabled bool       `json:"ai_screening_enabled"`
	ScreeningQuestions []string   `json:"screening_questions,omitempty"`
	ViewCount          int        `json:"view_count"`
	ApplicationCount   int        `json:"application_count"`
	AuthorName         string     `json:"author_name,omitempty"`
	CompanyName        string     `json:"company_name,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
