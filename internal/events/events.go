// Package events routes domain events raised during provisioning to
// registered handlers. Publishing is fire-and-forget: a slow or absent
// consumer never blocks the pipeline, and events raised inside a transaction
// that later rolls back are simply noise the handlers must tolerate.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	id "sokoni/pkg/domain"
)

type EventType string

const (
	TypeTenantCreated EventType = "tenant.created"
	TypeUserCreated   EventType = "user.created"
	TypeAdminCreated  EventType = "admin.created"
)

// Category groups events for consumer-side routing. Provisioning events all
// land on system notifications.
type Category string

const CategorySystemNotifications Category = "system-notifications"

// Event is one domain occurrence.
type Event struct {
	Type       EventType
	Category   Category
	TenantID   id.TenantID
	Data       map[string]string
	OccurredAt time.Time
}

// Handler consumes routed events. Errors are logged, never propagated to the
// publisher.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error { return f(ctx, event) }

// Router fans events out to type-registered handlers through a bounded
// queue. A full queue drops the event and logs the drop.
type Router struct {
	logger *slog.Logger
	queue  chan Event

	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

type Option func(*Router)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithQueueSize(size int) Option {
	return func(r *Router) {
		if size > 0 {
			r.queue = make(chan Event, size)
		}
	}
}

func NewRouter(opts ...Option) *Router {
	r := &Router{
		logger:   slog.Default(),
		queue:    make(chan Event, 256),
		handlers: make(map[EventType][]Handler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a handler for the given event type.
func (r *Router) Register(eventType EventType, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// Publish enqueues an event without blocking. A zero OccurredAt is set to
// now; a full queue drops the event.
func (r *Router) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if event.Category == "" {
		event.Category = CategorySystemNotifications
	}
	select {
	case r.queue <- event:
	default:
		r.logger.WarnContext(ctx, "event queue full, dropping event",
			"type", event.Type, "tenant_id", event.TenantID)
	}
}

// Run dispatches queued events until ctx is cancelled.
func (r *Router) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-r.queue:
			r.dispatch(ctx, event)
		}
	}
}

func (r *Router) dispatch(ctx context.Context, event Event) {
	r.mu.RLock()
	handlers := append([]Handler(nil), r.handlers[event.Type]...)
	r.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			r.logger.ErrorContext(ctx, "event handler failed",
				"type", event.Type, "tenant_id", event.TenantID, "error", err)
		}
	}
}
