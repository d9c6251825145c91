// Package jobs carries the background worker: the unattended schedule
// sweep and artifact dispatch queue.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportSweep fires the due-schedule sweep.
	TaskReportSweep = "report:sweep"
	// TaskReportDispatch delivers a finished artifact to recipients.
	TaskReportDispatch = "report:dispatch"
)

// ReportDispatchPayload describes one artifact delivery.
type ReportDispatchPayload struct {
	OwnerID    string   `json:"owner_id"`
	ReportType string   `json:"report_type"`
	Format     string   `json:"format"`
	Recipients []string `json:"recipients"`
	Filename   string   `json:"filename"`
	SizeBytes  int64    `json:"size_bytes"`
}

// NewReportSweepTask constructs the periodic sweep task.
func NewReportSweepTask() *asynq.Task {
	return asynq.NewTask(TaskReportSweep, nil)
}

// NewReportDispatchTask constructs an artifact delivery task.
func NewReportDispatchTask(payload ReportDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportDispatch, data), nil
}
