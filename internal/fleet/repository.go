package fleet

import (
	"context"
	"time"
)

// TemplateRepository stores report templates. Get returns (nil, nil) when
// the ID is unknown or owned by someone else.
type TemplateRepository interface {
	Create(ctx context.Context, t ReportTemplate) error
	Get(ctx context.Context, ownerID, id string) (*ReportTemplate, error)
	ListByOwner(ctx context.Context, ownerID string) ([]ReportTemplate, error)
	Update(ctx context.Context, t ReportTemplate) error
	Delete(ctx context.Context, ownerID, id string) error
}

// ScheduleRepository stores recurring report definitions. List returns
// every schedule across owners for the unattended sweep.
type ScheduleRepository interface {
	Create(ctx context.Context, s ScheduledReport) error
	Get(ctx context.Context, ownerID, id string) (*ScheduledReport, error)
	ListByOwner(ctx context.Context, ownerID string) ([]ScheduledReport, error)
	List(ctx context.Context) ([]ScheduledReport, error)
	Update(ctx context.Context, s ScheduledReport) error
	Delete(ctx context.Context, ownerID, id string) error
}

// ExportRepository stores export history entries.
type ExportRepository interface {
	Create(ctx context.Context, e ExportedReport) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]ExportedReport, error)
	CountSince(ctx context.Context, ownerID string, since time.Time) (int, error)
}
