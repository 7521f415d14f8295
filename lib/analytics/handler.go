package analytics

import (
	"bytes"
	"hr-recruit-backend/db"
	analyticsstore "hr-recruit-backend/lib/analytics/store"
	applicanthandler "hr-recruit-backend/lib/applicant"
	applicantstore "hr-recruit-backend/lib/applicant/store"
	xlsexport "hr-recruit-backend/lib/export/xls"
	jobstore "hr-recruit-backend/lib/job/store"
	screeningstore "hr-recruit-backend/lib/screening/store"
	initchecker "hr-recruit-backend/lib/utils/init-checker"
	"hr-recruit-backend/models"
	analyticsapimodels "hr-recruit-backend/models/api/analytics"
	dbmodels "hr-recruit-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Dashboard(userID string) (*analyticsapimodels.DashboardView, error)
	JobFunnel(jobID, userID string) (*analyticsapimodels.JobFunnelView, error)
	ExportApplicationsToXls(userID string, filter dbmodels.ApplicationFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          analyticsstore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
		screeningStore: screeningstore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"xlsExport", xlsexport.Instance,
		"applicantHandler", applicanthandler.Instance,
	)
	Instance = instance
}

type impl struct {
	store          analyticsstore.Provider
	applicantStore applicantstore.Provider
	screeningStore screeningstore.Provider
	jobStore       jobstore.Provider
}

func (i impl) Dashboard(userID string) (*analyticsapimodels.DashboardView, error) {
	view := analyticsapimodels.DashboardView{}
	var err error
	view.ActiveJobs, err = i.store.CountActiveJobs(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета активных вакансий")
	}
	view.TotalApplications, err = i.store.CountApplications(userID, "")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета откликов")
	}
	counts, err := i.store.CountByStatuses(userID, "")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета откликов по статусам")
	}
	view.ByStatus = make([]analyticsapimodels.StatusCount, 0, len(models.ApplicationStatusList))
	for _, status := range models.ApplicationStatusList {
		cnt, ok := counts[status]
		if !ok {
			continue
		}
		view.ByStatus = append(view.ByStatus, analyticsapimodels.StatusCount{
			Status:     string(status),
			StatusName: status.ToHuman(),
			Count:      cnt,
		})
		if status == models.ApplicationStatusHired {
			view.Hired = cnt
		}
	}
	view.AvgScreeningScore, err = i.screeningStore.AvgScoreByJob("")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета средней оценки скрининга")
	}
	view.AvgTimeToHireDays, err = i.store.AvgTimeToHireDays(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета времени найма")
	}
	return &view, nil
}

func (i impl) JobFunnel(jobID, userID string) (*analyticsapimodels.JobFunnelView, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil || job.AuthorID != userID {
		return nil, errors.New("вакансия не найдена")
	}
	total, err := i.store.CountApplications("", jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета откликов")
	}
	reached, err := i.store.ReachedStageCounts(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета этапов воронки")
	}
	view := analyticsapimodels.JobFunnelView{
		JobID:   job.ID,
		JobName: job.Name,
		Stages:  buildFunnel(total, reached),
	}
	return &view, nil
}

func (i impl) ExportApplicationsToXls(userID string, filter dbmodels.ApplicationFilter) (*bytes.Buffer, error) {
	list, err := i.applicantStore.ListForExport(filter, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	return xlsexport.Instance.ExportApplicationList(list)
}

// воронка считается по основному пути, отказы и отзывы в этапы не входят
var funnelStages = []models.ApplicationStatus{
	models.ApplicationStatusApplied,
	models.ApplicationStatusScreening,
	models.ApplicationStatusInterviewScheduled,
	models.ApplicationStatusInterviewCompleted,
	models.ApplicationStatusOfferSent,
	models.ApplicationStatusOfferAccepted,
	models.ApplicationStatusHired,
}

func buildFunnel(total int64, reached map[models.ApplicationStatus]int64) []analyticsapimodels.FunnelStage {
	stages := make([]analyticsapimodels.FunnelStage, 0, len(funnelStages))
	prev := total
	for _, status := range funnelStages {
		cnt := reached[status]
		if status == models.ApplicationStatusApplied {
			cnt = total
		}
		conversion := 0.0
		if prev > 0 {
			conversion = float64(cnt) / float64(prev)
		}
		stages = append(stages, analyticsapimodels.FunnelStage{
			Status:     string(status),
			StatusName: status.ToHuman(),
			Count:      cnt,
			Conversion: conversion,
		})
		prev = cnt
	}
	return stages
}
