package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/fleetworks/fleetworks/internal/jobs"
)

// DispatchJob records artifact deliveries. Actual transport is out of
// scope; the handler logs the handover so deliveries stay auditable.
type DispatchJob struct {
	logger  *slog.Logger
	metrics *jobmetrics.Metrics
}

// NewDispatchJob wires the dispatch handler.
func NewDispatchJob(logger *slog.Logger, metrics *jobmetrics.Metrics) *DispatchJob {
	return &DispatchJob{logger: logger, metrics: metrics}
}

// Handle processes TaskReportDispatch tasks.
func (j *DispatchJob) Handle(_ context.Context, t *asynq.Task) (resultErr error) {
	tracker := j.jobMetrics().Track(TaskReportDispatch)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	var payload ReportDispatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	j.jobMetrics().AddExports(payload.ReportType, payload.Format, 1)
	j.logger.Info("report dispatched",
		"owner_id", payload.OwnerID,
		"recipients", strings.Join(payload.Recipients, ","),
		"filename", payload.Filename,
		"size_bytes", payload.SizeBytes,
	)
	return nil
}

func (j *DispatchJob) jobMetrics() *jobmetrics.Metrics {
	if j.metrics != nil {
		return j.metrics
	}
	return defaultJobMetrics
}
