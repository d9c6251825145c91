// Package fleet wires report generation, export rendering, templates and
// recurrence scheduling into one service surface.
package fleet

import (
	"errors"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/export"
	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

var (
	ErrTemplateNotFound = errors.New("fleet: report template not found")
	ErrScheduleNotFound = errors.New("fleet: scheduled report not found")
)

// PeriodType selects how a template derives its reporting window.
type PeriodType string

const (
	PeriodDaily   PeriodType = "DAILY"
	PeriodWeekly  PeriodType = "WEEKLY"
	PeriodMonthly PeriodType = "MONTHLY"
	PeriodCustom  PeriodType = "CUSTOM"
)

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodCustom:
		return true
	}
	return false
}

// Frequency selects how often a schedule fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// ScheduleStatus tracks the lifecycle of a recurring report.
type ScheduleStatus string

const (
	ScheduleActive ScheduleStatus = "ACTIVE"
	SchedulePaused ScheduleStatus = "PAUSED"
	ScheduleError  ScheduleStatus = "ERROR"
)

// ReportTemplate is a saved report configuration that schedules and ad-hoc
// exports reference by ID.
type ReportTemplate struct {
	ID            string            `json:"id"`
	OwnerID       string            `json:"owner_id"`
	Name          string            `json:"name"`
	ReportType    report.ReportType `json:"report_type"`
	PeriodType    PeriodType        `json:"period_type"`
	CustomDays    int               `json:"custom_days,omitempty"`
	Format        export.Format     `json:"format"`
	Filters       report.Filters    `json:"filters"`
	IncludeCharts bool              `json:"include_charts"`
	Recipients    []string          `json:"recipients,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ScheduledReport is a recurring run of a template.
type ScheduledReport struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"owner_id"`
	TemplateID string         `json:"template_id"`
	Frequency  Frequency      `json:"frequency"`
	DayOfWeek  int            `json:"day_of_week,omitempty"`
	DayOfMonth int            `json:"day_of_month,omitempty"`
	Time       string         `json:"time"`
	Status     ScheduleStatus `json:"status"`
	LastRunAt  *time.Time     `json:"last_run_at,omitempty"`
	NextRunAt  time.Time      `json:"next_run_at"`
	LastError  string         `json:"last_error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ExportedReport is one history entry per produced artifact.
type ExportedReport struct {
	ID         string            `json:"id"`
	OwnerID    string            `json:"owner_id"`
	ReportType report.ReportType `json:"report_type"`
	Format     export.Format     `json:"format"`
	Filename   string            `json:"filename"`
	SizeBytes  int64             `json:"size_bytes"`
	From       time.Time         `json:"from"`
	To         time.Time         `json:"to"`
	CreatedAt  time.Time         `json:"created_at"`
	ExpiresAt  time.Time         `json:"expires_at"`
}

// CreateTemplateRequest carries a new template definition.
type CreateTemplateRequest struct {
	Name          string            `json:"name" validate:"required,min=1,max=120"`
	ReportType    report.ReportType `json:"report_type" validate:"required"`
	PeriodType    PeriodType        `json:"period_type" validate:"required"`
	CustomDays    int               `json:"custom_days" validate:"omitempty,min=1,max=365"`
	Format        export.Format     `json:"format" validate:"required"`
	Filters       report.Filters    `json:"filters"`
	IncludeCharts bool              `json:"include_charts"`
	Recipients    []string          `json:"recipients" validate:"omitempty,dive,email"`
}

// UpdateTemplateRequest carries a partial template update. Nil fields are
// left untouched.
type UpdateTemplateRequest struct {
	Name          *string            `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	ReportType    *report.ReportType `json:"report_type,omitempty"`
	PeriodType    *PeriodType        `json:"period_type,omitempty"`
	CustomDays    *int               `json:"custom_days,omitempty" validate:"omitempty,min=1,max=365"`
	Format        *export.Format     `json:"format,omitempty"`
	Filters       *report.Filters    `json:"filters,omitempty"`
	IncludeCharts *bool              `json:"include_charts,omitempty"`
	Recipients    *[]string          `json:"recipients,omitempty" validate:"omitempty,dive,email"`
}

// ScheduleRequest creates a recurring run of an existing template.
type ScheduleRequest struct {
	TemplateID string    `json:"template_id" validate:"required"`
	Frequency  Frequency `json:"frequency" validate:"required"`
	DayOfWeek  int       `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	DayOfMonth int       `json:"day_of_month" validate:"omitempty,min=1,max=31"`
	Time       string    `json:"time" validate:"required,datetime=15:04"`
}

// ExportRequest produces one artifact on demand.
type ExportRequest struct {
	ReportType    report.ReportType `json:"report_type" validate:"required"`
	Format        export.Format     `json:"format" validate:"required"`
	From          time.Time         `json:"from" validate:"required"`
	To            time.Time         `json:"to" validate:"required"`
	Filters       report.Filters    `json:"filters"`
	Recipients    []string          `json:"recipients" validate:"omitempty,dive,email"`
	IncludeCharts bool              `json:"include_charts"`
}

// QuickSummary is the dashboard snapshot served from cache.
type QuickSummary struct {
	TodayDeliveries   int       `json:"today_deliveries"`
	WeeklySuccessRate int       `json:"weekly_success_rate"`
	ActiveVehicles    int       `json:"active_vehicles"`
	ActiveSchedules   int       `json:"active_schedules"`
	ExportsLastWeek   int       `json:"exports_last_week"`
	GeneratedAt       time.Time `json:"generated_at"`
}
