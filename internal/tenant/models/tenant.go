package models

import (
	"time"

	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
)

// TenantStatus tracks the approval lifecycle of a tenant. New tenants start
// unapproved; a platform operator approves them out of band.
type TenantStatus string

const (
	TenantStatusUnapproved TenantStatus = "UNAPPROVED"
	TenantStatusApproved   TenantStatus = "APPROVED"
	TenantStatusSuspended  TenantStatus = "SUSPENDED"
)

// Tenant is the aggregate root for a company workspace (the isolation
// boundary every store, payment method, and role is assigned to).
//
// Invariants:
//   - Code is non-empty, at most 64 characters, and unique system-wide;
//     it doubles as the tenant's API token
//   - Currency is a member of the supported enumeration
//   - Both default zone references are set (copied from the default tenant)
//   - PartyID references the owning party; permission checks on the tenant
//     fail while the relation is missing
//   - CreatedAt is immutable after construction
type Tenant struct {
	ID               id.TenantID  `json:"id"`
	Code             string       `json:"code"`
	Currency         Currency     `json:"currency"`
	Status           TenantStatus `json:"status"`
	PartyID          id.PartyID   `json:"party_id"`
	DefaultGeoZoneID id.ZoneID    `json:"default_geo_zone_id"`
	DefaultTaxZoneID id.ZoneID    `json:"default_tax_zone_id"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// HasDefaultZones reports whether both default zone references are set.
// Only a tenant with both zones can serve as the template for new tenants.
func (t *Tenant) HasDefaultZones() bool {
	return !t.DefaultGeoZoneID.IsNil() && !t.DefaultTaxZoneID.IsNil()
}

// NewTenant constructs a tenant in the UNAPPROVED state, copying the default
// zones from the given template tenant.
func NewTenant(tenantID id.TenantID, code string, currency Currency, partyID id.PartyID, template *Tenant, now time.Time) (*Tenant, error) {
	if code == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant code cannot be empty")
	}
	if len(code) > 64 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant code must be 64 characters or less")
	}
	if !currency.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "unsupported currency %q", currency)
	}
	if template == nil || !template.HasDefaultZones() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "template tenant must carry default geo and tax zones")
	}
	return &Tenant{
		ID:               tenantID,
		Code:             code,
		Currency:         currency,
		Status:           TenantStatusUnapproved,
		PartyID:          partyID,
		DefaultGeoZoneID: template.DefaultGeoZoneID,
		DefaultTaxZoneID: template.DefaultTaxZoneID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Party is the owning party ("seller") of a tenant. One party per tenant;
// service-level permission checks resolve through it, so a tenant without a
// party is invisible to scoped service calls.
type Party struct {
	ID        id.PartyID `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewParty(partyID id.PartyID, name string, now time.Time) (*Party, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "party name cannot be empty")
	}
	return &Party{ID: partyID, Name: name, CreatedAt: now}, nil
}
