// Package worker bridges an event channel to an audit sink for deployments
// that queue events outside the publisher.
package worker

import (
	"context"
	"log/slog"

	"sokoni/internal/audit"
)

// Worker consumes audit events from a channel and forwards them to a sink.
// Sink failures are logged and skipped: the provisioning flow that queued the
// event has already moved on, so one undeliverable event must not stop the
// drain loop behind it.
type Worker struct {
	sink   audit.Sink
	inbox  <-chan audit.Event
	logger *slog.Logger
}

type Option func(*Worker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func NewWorker(sink audit.Sink, inbox <-chan audit.Event, opts ...Option) *Worker {
	w := &Worker{sink: sink, inbox: inbox, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run drains the inbox until ctx is canceled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Append(ctx, event); err != nil {
				w.logger.WarnContext(ctx, "audit event dropped",
					"tenant_id", event.TenantID,
					"action", event.Action,
					"error", err)
			}
		}
	}
}
