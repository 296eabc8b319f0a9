package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "sokoni/pkg/domain"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []Event
}

func (h *recordingHandler) Handle(_ context.Context, event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandler) snapshot() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...)
}

func TestRouterDispatchesByType(t *testing.T) {
	router := NewRouter(WithQueueSize(8))
	adminHandler := &recordingHandler{}
	userHandler := &recordingHandler{}
	router.Register(TypeAdminCreated, adminHandler)
	router.Register(TypeUserCreated, userHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = router.Run(ctx) }()

	tenantID := id.TenantID(uuid.New())
	router.Publish(ctx, Event{Type: TypeAdminCreated, TenantID: tenantID})
	router.Publish(ctx, Event{Type: TypeUserCreated, TenantID: tenantID})

	require.Eventually(t, func() bool {
		return len(adminHandler.snapshot()) == 1 && len(userHandler.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	got := adminHandler.snapshot()[0]
	assert.Equal(t, TypeAdminCreated, got.Type)
	assert.Equal(t, CategorySystemNotifications, got.Category)
	assert.False(t, got.OccurredAt.IsZero())
}

func TestRouterPublishNeverBlocks(t *testing.T) {
	// No Run loop draining the queue.
	router := NewRouter(WithQueueSize(1))
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 10 {
			router.Publish(ctx, Event{Type: TypeTenantCreated})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}
