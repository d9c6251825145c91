package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fleetworks/fleetworks/internal/fleet"
	jobmetrics "github.com/fleetworks/fleetworks/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

// SweepJob runs the due-schedule sweep on the worker.
type SweepJob struct {
	svc     *fleet.Service
	logger  *slog.Logger
	metrics *jobmetrics.Metrics
	now     func() time.Time
}

// NewSweepJob wires the sweep handler.
func NewSweepJob(svc *fleet.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *SweepJob {
	return &SweepJob{svc: svc, logger: logger, metrics: metrics, now: time.Now}
}

// Handle processes TaskReportSweep tasks.
func (j *SweepJob) Handle(ctx context.Context, _ *asynq.Task) (resultErr error) {
	tracker := j.jobMetrics().Track(TaskReportSweep)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	started := j.now()
	ran, err := j.svc.RunDueSchedules(ctx, started)
	if err != nil {
		j.logger.Error("schedule sweep failed", "error", err)
		return err
	}
	j.logger.Info("schedule sweep finished", "ran", ran, "took", time.Since(started).String())
	return nil
}

func (j *SweepJob) jobMetrics() *jobmetrics.Metrics {
	if j.metrics != nil {
		return j.metrics
	}
	return defaultJobMetrics
}
