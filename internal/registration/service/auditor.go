package service

import (
	"context"

	"sokoni/internal/audit"
	"sokoni/pkg/attrs"
	id "sokoni/pkg/domain"
	"sokoni/pkg/requestcontext"
)

// AuditPublisher accepts audit events. The registration auditor never lets a
// publish failure reach the pipeline.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// auditEntityCreated records an entity-created fact. Nil publisher and
// publish failures are both swallowed after logging; the audit trail must
// never fail a registration.
func (s *Service) auditEntityCreated(ctx context.Context, action audit.AuditEvent, tenantID id.TenantID, entityType, entityID string, extra ...any) {
	if s.auditor == nil {
		return
	}
	event := audit.Event{
		TenantID:   tenantID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     string(action),
		RequestID:  requestcontext.RequestID(ctx),
		Data:       attrs.Fields(extra),
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"entity_type", entityType, "entity_id", entityID, "error", err)
	}
}
