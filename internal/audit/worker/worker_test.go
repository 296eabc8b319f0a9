package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoni/internal/audit"
	id "sokoni/pkg/domain"
)

type flakySink struct {
	mu        sync.Mutex
	failFirst bool
	appended  []audit.Event
}

func (f *flakySink) Append(_ context.Context, event audit.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFirst {
		f.failFirst = false
		return errors.New("broker unavailable")
	}
	f.appended = append(f.appended, event)
	return nil
}

func (f *flakySink) events() []audit.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]audit.Event(nil), f.appended...)
}

func TestRunSurvivesSinkFailure(t *testing.T) {
	sink := &flakySink{failFirst: true}
	inbox := make(chan audit.Event, 2)
	worker := NewWorker(sink, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	dropped := audit.Event{TenantID: id.TenantID(uuid.New()), Action: string(audit.EventTenantCreated)}
	delivered := audit.Event{TenantID: id.TenantID(uuid.New()), Action: string(audit.EventUserCreated)}
	inbox <- dropped
	inbox <- delivered

	require.Eventually(t, func() bool {
		return len(sink.events()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, delivered.TenantID, sink.events()[0].TenantID)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
