package audit

import (
	"context"

	id "sokoni/pkg/domain"
)

// Sink accepts events for delivery. Implementations may persist, forward to
// a broker, or both.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is a sink that also supports querying by tenant.
type Store interface {
	Sink
	ListByTenant(ctx context.Context, tenantID id.TenantID) ([]Event, error)
}
