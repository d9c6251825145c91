package jobs

import (
	"context"

	"github.com/fleetworks/fleetworks/internal/fleet"
)

// QueueDispatcher hands artifact deliveries to the background queue.
type QueueDispatcher struct {
	client *Client
}

// NewQueueDispatcher wires the dispatcher onto a jobs client.
func NewQueueDispatcher(client *Client) *QueueDispatcher {
	return &QueueDispatcher{client: client}
}

// Dispatch enqueues a delivery task for the worker.
func (d *QueueDispatcher) Dispatch(ctx context.Context, req fleet.DispatchRequest) error {
	_, err := d.client.EnqueueReportDispatch(ctx, ReportDispatchPayload{
		OwnerID:    req.OwnerID,
		ReportType: req.ReportType,
		Format:     req.Format,
		Recipients: req.Recipients,
		Filename:   req.Filename,
		SizeBytes:  req.SizeBytes,
	})
	return err
}
