package analyticsapimodels

import "time"

type DashboardView struct {
	ActiveJobs        int64            `json:"active_jobs"`
	TotalApplications int64            `json:"total_applications"`
	ByStatus          []StatusCount    `json:"by_status"`
	AvgScreeningScore *float64         `json:"avg_screening_score,omitempty"`
	Hired             int64            `json:"hired"`
	AvgTimeToHireDays *float64         `json:"avg_time_to_hire_days,omitempty"`
	PeriodFrom        *time.Time       `json:"period_from,omitempty"`
	PeriodTo          *time.Time       `json:"period_to,omitempty"`
}

type StatusCount struct {
	Status     string `json:"status"`
	StatusName string `json:"status_name"`
	Count      int64  `json:"count"`
}

type FunnelStage struct {
	Status     string  `json:"status"`
	StatusName string  `json:"status_name"`
	Count      int64   `json:"count"`
	Conversion float64 `json:"conversion"` // доля от предыдущего этапа, 0..1
}

type JobFunnelView struct {
	JobID   string        `json:"job_id"`
	JobName string        `json:"job_name"`
	Stages  []FunnelStage `json:"stages"`
}

type AnalyticsFilter struct {
	JobID string     `json:"job_id"`
	From  *time.Time `json:"from,omitempty"`
	To    *time.Time `json:"to,omitempty"`
}
