package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fleetworks/fleetworks/internal/fleet/export"
	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

const (
	defaultHistoryLimit = 20
	artifactRetention   = 7 * 24 * time.Hour
)

// Dispatcher delivers a finished artifact to its recipients. Delivery is
// best effort; failures are logged by the service, never surfaced to the
// export caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) error
}

// DispatchRequest carries one artifact to be delivered.
type DispatchRequest struct {
	OwnerID    string   `json:"owner_id"`
	ReportType string   `json:"report_type"`
	Format     string   `json:"format"`
	Recipients []string `json:"recipients"`
	Filename   string   `json:"filename"`
	SizeBytes  int64    `json:"size_bytes"`
}

// ServiceDeps bundles the service collaborators.
type ServiceDeps struct {
	Templates  TemplateRepository
	Schedules  ScheduleRepository
	Exports    ExportRepository
	Engine     *report.Engine
	Registry   *export.Registry
	Source     report.DataSource
	Dispatcher Dispatcher
	Cache      *Cache
	Logger     *slog.Logger
}

// Service coordinates report generation, rendering, templates, schedules
// and export history.
type Service struct {
	templates  TemplateRepository
	schedules  ScheduleRepository
	exports    ExportRepository
	engine     *report.Engine
	registry   *export.Registry
	source     report.DataSource
	dispatcher Dispatcher
	cache      *Cache
	logger     *slog.Logger
	validate   *validator.Validate
	now        func() time.Time
	newID      func() string
}

// NewService wires the fleet reporting service.
func NewService(deps ServiceDeps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		templates:  deps.Templates,
		schedules:  deps.Schedules,
		exports:    deps.Exports,
		engine:     deps.Engine,
		registry:   deps.Registry,
		source:     deps.Source,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		logger:     logger,
		validate:   validator.New(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// CreateTemplate stores a new report template for the owner.
func (s *Service) CreateTemplate(ctx context.Context, ownerID string, req CreateTemplateRequest) (*ReportTemplate, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("fleet: validate template: %w", err)
	}
	if !req.ReportType.IsValid() {
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownReportType, req.ReportType)
	}
	if !req.PeriodType.IsValid() {
		return nil, fmt.Errorf("fleet: unknown period type %q", req.PeriodType)
	}
	if !req.Format.IsValid() {
		return nil, fmt.Errorf("%w: %q", export.ErrUnknownFormat, req.Format)
	}

	now := s.now()
	tmpl := ReportTemplate{
		ID:            s.newID(),
		OwnerID:       ownerID,
		Name:          req.Name,
		ReportType:    req.ReportType,
		PeriodType:    req.PeriodType,
		CustomDays:    req.CustomDays,
		Format:        req.Format,
		Filters:       req.Filters,
		IncludeCharts: req.IncludeCharts,
		Recipients:    req.Recipients,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.templates.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("fleet: create template: %w", err)
	}
	s.logger.Info("report template created", "template_id", tmpl.ID, "report_type", tmpl.ReportType)
	return &tmpl, nil
}

// GetTemplates lists the owner's templates in creation order.
func (s *Service) GetTemplates(ctx context.Context, ownerID string) ([]ReportTemplate, error) {
	return s.templates.ListByOwner(ctx, ownerID)
}

// GetTemplate fetches one template by ID.
func (s *Service) GetTemplate(ctx context.Context, ownerID, id string) (*ReportTemplate, error) {
	tmpl, err := s.templates.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("fleet: load template: %w", err)
	}
	if tmpl == nil {
		return nil, ErrTemplateNotFound
	}
	return tmpl, nil
}

// UpdateTemplate applies a partial update. Nil request fields keep their
// stored values.
func (s *Service) UpdateTemplate(ctx context.Context, ownerID, id string, req UpdateTemplateRequest) (*ReportTemplate, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("fleet: validate template update: %w", err)
	}
	tmpl, err := s.GetTemplate(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tmpl.Name = *req.Name
	}
	if req.ReportType != nil {
		if !req.ReportType.IsValid() {
			return nil, fmt.Errorf("%w: %q", report.ErrUnknownReportType, *req.ReportType)
		}
		tmpl.ReportType = *req.ReportType
	}
	if req.PeriodType != nil {
		if !req.PeriodType.IsValid() {
			return nil, fmt.Errorf("fleet: unknown period type %q", *req.PeriodType)
		}
		tmpl.PeriodType = *req.PeriodType
	}
	if req.CustomDays != nil {
		tmpl.CustomDays = *req.CustomDays
	}
	if req.Format != nil {
		if !req.Format.IsValid() {
			return nil, fmt.Errorf("%w: %q", export.ErrUnknownFormat, *req.Format)
		}
		tmpl.Format = *req.Format
	}
	if req.Filters != nil {
		tmpl.Filters = *req.Filters
	}
	if req.IncludeCharts != nil {
		tmpl.IncludeCharts = *req.IncludeCharts
	}
	if req.Recipients != nil {
		tmpl.Recipients = *req.Recipients
	}
	tmpl.UpdatedAt = s.now()

	if err := s.templates.Update(ctx, *tmpl); err != nil {
		return nil, fmt.Errorf("fleet: update template: %w", err)
	}
	return tmpl, nil
}

// DeleteTemplate removes a template. Schedules referencing it are left in
// place and flip to ERROR on their next due run.
func (s *Service) DeleteTemplate(ctx context.Context, ownerID, id string) error {
	return s.templates.Delete(ctx, ownerID, id)
}

// ScheduleReport creates a recurring run of an existing template.
func (s *Service) ScheduleReport(ctx context.Context, ownerID string, req ScheduleRequest) (*ScheduledReport, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("fleet: validate schedule: %w", err)
	}
	if !req.Frequency.IsValid() {
		return nil, fmt.Errorf("fleet: unknown schedule frequency %q", req.Frequency)
	}
	if _, err := s.GetTemplate(ctx, ownerID, req.TemplateID); err != nil {
		return nil, err
	}

	now := s.now()
	sched := ScheduledReport{
		ID:         s.newID(),
		OwnerID:    ownerID,
		TemplateID: req.TemplateID,
		Frequency:  req.Frequency,
		DayOfWeek:  req.DayOfWeek,
		DayOfMonth: req.DayOfMonth,
		Time:       req.Time,
		Status:     ScheduleActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	next, err := NextRun(sched, now)
	if err != nil {
		return nil, err
	}
	sched.NextRunAt = next

	if err := s.schedules.Create(ctx, sched); err != nil {
		return nil, fmt.Errorf("fleet: create schedule: %w", err)
	}
	s.logger.Info("report scheduled", "schedule_id", sched.ID, "template_id", sched.TemplateID, "next_run_at", sched.NextRunAt)
	return &sched, nil
}

// GetScheduledReports lists the owner's schedules.
func (s *Service) GetScheduledReports(ctx context.Context, ownerID string) ([]ScheduledReport, error) {
	return s.schedules.ListByOwner(ctx, ownerID)
}

// PauseSchedule stops a schedule from firing until resumed.
func (s *Service) PauseSchedule(ctx context.Context, ownerID, id string) (*ScheduledReport, error) {
	sched, err := s.getSchedule(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	sched.Status = SchedulePaused
	sched.UpdatedAt = s.now()
	if err := s.schedules.Update(ctx, *sched); err != nil {
		return nil, fmt.Errorf("fleet: pause schedule: %w", err)
	}
	return sched, nil
}

// ResumeSchedule reactivates a paused or errored schedule and recomputes
// its next fire time.
func (s *Service) ResumeSchedule(ctx context.Context, ownerID, id string) (*ScheduledReport, error) {
	sched, err := s.getSchedule(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	next, err := NextRun(*sched, now)
	if err != nil {
		return nil, err
	}
	sched.Status = ScheduleActive
	sched.LastError = ""
	sched.NextRunAt = next
	sched.UpdatedAt = now
	if err := s.schedules.Update(ctx, *sched); err != nil {
		return nil, fmt.Errorf("fleet: resume schedule: %w", err)
	}
	return sched, nil
}

// DeleteSchedule removes a schedule.
func (s *Service) DeleteSchedule(ctx context.Context, ownerID, id string) error {
	return s.schedules.Delete(ctx, ownerID, id)
}

func (s *Service) getSchedule(ctx context.Context, ownerID, id string) (*ScheduledReport, error) {
	sched, err := s.schedules.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("fleet: load schedule: %w", err)
	}
	if sched == nil {
		return nil, ErrScheduleNotFound
	}
	return sched, nil
}

// RunDueSchedules fires every ACTIVE schedule whose next run time has
// passed. A failing schedule is marked ERROR and the sweep moves on; the
// returned count is the number of successful runs.
func (s *Service) RunDueSchedules(ctx context.Context, now time.Time) (int, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("fleet: list schedules: %w", err)
	}

	ran := 0
	for _, sched := range schedules {
		if sched.Status != ScheduleActive || sched.NextRunAt.After(now) {
			continue
		}
		if err := s.runSchedule(ctx, sched, now); err != nil {
			s.logger.Error("scheduled report failed", "schedule_id", sched.ID, "error", err)
			sched.Status = ScheduleError
			sched.LastError = err.Error()
			sched.UpdatedAt = now
			if uerr := s.schedules.Update(ctx, sched); uerr != nil {
				s.logger.Error("schedule state update failed", "schedule_id", sched.ID, "error", uerr)
			}
			continue
		}

		next, err := NextRun(sched, now)
		if err != nil {
			return ran, err
		}
		last := now
		sched.LastRunAt = &last
		sched.NextRunAt = next
		sched.LastError = ""
		sched.UpdatedAt = now
		if err := s.schedules.Update(ctx, sched); err != nil {
			return ran, fmt.Errorf("fleet: update schedule: %w", err)
		}
		ran++
	}
	return ran, nil
}

func (s *Service) runSchedule(ctx context.Context, sched ScheduledReport, now time.Time) error {
	tmpl, err := s.templates.Get(ctx, sched.OwnerID, sched.TemplateID)
	if err != nil {
		return fmt.Errorf("fleet: load template: %w", err)
	}
	if tmpl == nil {
		return ErrTemplateNotFound
	}

	from, to := periodWindow(tmpl.PeriodType, tmpl.CustomDays, now)
	_, err = s.ExportReport(ctx, sched.OwnerID, ExportRequest{
		ReportType:    tmpl.ReportType,
		Format:        tmpl.Format,
		From:          from,
		To:            to,
		Filters:       tmpl.Filters,
		Recipients:    tmpl.Recipients,
		IncludeCharts: tmpl.IncludeCharts,
	})
	return err
}

// ExportResult pairs the rendered artifact with its history entry.
type ExportResult struct {
	Artifact export.Artifact
	Entry    ExportedReport
}

// ExportReport generates, filters and renders one report, records it in
// the export history and hands it to the dispatcher when recipients are
// present.
func (s *Service) ExportReport(ctx context.Context, ownerID string, req ExportRequest) (*ExportResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("fleet: validate export: %w", err)
	}

	rep, err := s.engine.Generate(ctx, ownerID, req.ReportType, report.Window{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}
	rep = report.ApplyFilters(rep, req.Filters)

	now := s.now()
	art, err := s.registry.Render(rep, req.Format, now, export.Options{IncludeCharts: req.IncludeCharts})
	if err != nil {
		return nil, err
	}

	entry := ExportedReport{
		ID:         s.newID(),
		OwnerID:    ownerID,
		ReportType: req.ReportType,
		Format:     req.Format,
		Filename:   art.Filename,
		SizeBytes:  art.SizeBytes,
		From:       req.From,
		To:         req.To,
		CreatedAt:  now,
		ExpiresAt:  now.Add(artifactRetention),
	}
	if err := s.exports.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("fleet: record export: %w", err)
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("cache bump failed", "error", err)
	}

	if len(req.Recipients) > 0 && s.dispatcher != nil {
		dreq := DispatchRequest{
			OwnerID:    ownerID,
			ReportType: string(req.ReportType),
			Format:     string(req.Format),
			Recipients: req.Recipients,
			Filename:   art.Filename,
			SizeBytes:  art.SizeBytes,
		}
		if err := s.dispatcher.Dispatch(ctx, dreq); err != nil {
			s.logger.Error("artifact dispatch failed", "filename", art.Filename, "error", err)
		}
	}

	s.logger.Info("report exported", "report_type", req.ReportType, "format", req.Format, "filename", art.Filename, "size_bytes", art.SizeBytes)
	return &ExportResult{Artifact: art, Entry: entry}, nil
}

// BulkExportResult summarises a bulk export run.
type BulkExportResult struct {
	Requested      int
	Exported       int
	TotalSizeBytes int64
	Results        []ExportResult
	Errors         []error
}

// BulkExport runs the requests sequentially, skipping failures.
func (s *Service) BulkExport(ctx context.Context, ownerID string, reqs []ExportRequest) (*BulkExportResult, error) {
	result := &BulkExportResult{Requested: len(reqs)}
	for _, req := range reqs {
		res, err := s.ExportReport(ctx, ownerID, req)
		if err != nil {
			s.logger.Warn("bulk export item failed", "report_type", req.ReportType, "format", req.Format, "error", err)
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Exported++
		result.TotalSizeBytes += res.Artifact.SizeBytes
		result.Results = append(result.Results, *res)
	}
	return result, nil
}

// GetExportHistory lists the owner's exports newest first.
func (s *Service) GetExportHistory(ctx context.Context, ownerID string, limit int) ([]ExportedReport, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.exports.ListByOwner(ctx, ownerID, limit)
}

// GetQuickSummary serves the cached dashboard snapshot, rebuilding it on
// a cache miss.
func (s *Service) GetQuickSummary(ctx context.Context, ownerID string) (*QuickSummary, error) {
	key, err := s.cache.BuildKey(ctx, "fleet", "quick", ownerID)
	if err != nil {
		return nil, fmt.Errorf("fleet: build cache key: %w", err)
	}

	var summary QuickSummary
	err = s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
		return s.buildQuickSummary(ctx, ownerID)
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Service) buildQuickSummary(ctx context.Context, ownerID string) (*QuickSummary, error) {
	now := s.now()
	summary := QuickSummary{GeneratedAt: now}

	today := report.Window{From: startOfDay(now), To: endOfDay(now)}
	routes, err := s.source.RoutesInWindow(ctx, ownerID, today)
	if err != nil {
		return nil, fmt.Errorf("fleet: load routes: %w", err)
	}
	for _, route := range routes {
		for _, stop := range route.Stops {
			if stop.Status == report.StopStatusDelivered {
				summary.TodayDeliveries++
			}
		}
	}

	week := report.Window{From: startOfDay(now.AddDate(0, 0, -6)), To: endOfDay(now)}
	rep, err := s.engine.Generate(ctx, ownerID, report.TypeFleetPerformance, week)
	if err != nil {
		return nil, err
	}
	if perf, ok := rep.(*report.FleetPerformance); ok {
		summary.WeeklySuccessRate = perf.Summary.DeliverySuccessRate
	}

	vehicles, err := s.source.Vehicles(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fleet: load vehicles: %w", err)
	}
	for _, v := range vehicles {
		if v.Status.Active() {
			summary.ActiveVehicles++
		}
	}

	schedules, err := s.schedules.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fleet: list schedules: %w", err)
	}
	for _, sched := range schedules {
		if sched.Status == ScheduleActive {
			summary.ActiveSchedules++
		}
	}

	exportsLastWeek, err := s.exports.CountSince(ctx, ownerID, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("fleet: count exports: %w", err)
	}
	summary.ExportsLastWeek = exportsLastWeek

	return &summary, nil
}
