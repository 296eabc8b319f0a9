package main

import (
	"context"
	"log/slog"

	"sokoni/internal/events"
)

// registerNotificationHandlers wires the system-notification consumers. SMS
// delivery lives behind a gateway that is not part of this service; until it
// is wired the handlers record what would have been sent.
func registerNotificationHandlers(router *events.Router, log *slog.Logger) {
	router.Register(events.TypeAdminCreated, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		log.InfoContext(ctx, "admin welcome notification queued",
			"tenant_id", event.TenantID,
			"admin_id", event.Data["admin_id"])
		return nil
	}))
	router.Register(events.TypeUserCreated, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		log.InfoContext(ctx, "user onboarding notification queued",
			"tenant_id", event.TenantID,
			"identifier", event.Data["identifier"])
		return nil
	}))
}
