// Package audit captures entity lifecycle events from the provisioning
// pipeline. Events are append-only and transport-agnostic so stores and
// sinks can fan out.
package audit

import (
	"time"

	id "sokoni/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose. It drives
// retention and routing downstream.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance:
	// tenant onboarding, user and administrator creation.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine provisioning activity useful for
	// debugging. These can be sampled with short retention.
	CategoryOperations EventCategory = "operations"
)

// Event records one entity lifecycle action.
type Event struct {
	Timestamp  time.Time
	Category   EventCategory
	TenantID   id.TenantID
	EntityType string
	EntityID   string
	Action     string
	RequestID  string
	// Data carries a flattened snapshot of the entity at event time.
	Data map[string]string
}

type AuditEvent string

const (
	EventEntityCreated  AuditEvent = "entity_created"
	EventEntityAssigned AuditEvent = "entity_assigned"
	EventAdminCreated   AuditEvent = "admin_created"
	EventUserCreated    AuditEvent = "user_created"
	EventTenantCreated  AuditEvent = "tenant_created"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventTenantCreated: CategoryCompliance,
	EventAdminCreated:  CategoryCompliance,
	EventUserCreated:   CategoryCompliance,

	EventEntityCreated:  CategoryOperations,
	EventEntityAssigned: CategoryOperations,
}

// Category returns the EventCategory for this audit event. Unknown events
// default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
