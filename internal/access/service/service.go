// Package service exposes role administration for callers acting within a
// tenant. Tenant visibility is answered from a cache refreshed only from
// committed data, so a tenant created inside an open transaction is not
// visible here until after commit.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	accessmodels "sokoni/internal/access/models"
	"sokoni/internal/relation"
	tenantmodels "sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
)

// RoleStore persists roles.
type RoleStore interface {
	CreateRole(ctx context.Context, role *accessmodels.Role) error
	FindRoleByID(ctx context.Context, roleID id.RoleID) (*accessmodels.Role, error)
	FindRoleByCode(ctx context.Context, code string) (*accessmodels.Role, error)
}

// TenantLister reads committed tenants for cache refresh.
type TenantLister interface {
	ListCommitted(ctx context.Context) ([]*tenantmodels.Tenant, error)
}

// Service guards role creation behind tenant visibility.
type Service struct {
	roles     RoleStore
	relations relation.Store
	tenants   TenantLister
	logger    *slog.Logger

	mu      sync.RWMutex
	visible map[id.TenantID]id.PartyID
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(roles RoleStore, relations relation.Store, tenants TenantLister, opts ...Option) *Service {
	s := &Service{
		roles:     roles,
		relations: relations,
		tenants:   tenants,
		logger:    slog.Default(),
		visible:   make(map[id.TenantID]id.PartyID),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RefreshVisibility reloads the tenant visibility cache from committed data.
// Callers inside an open transaction must not expect their own writes here.
func (s *Service) RefreshVisibility(ctx context.Context) error {
	tenants, err := s.tenants.ListCommitted(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "refresh tenant visibility")
	}
	next := make(map[id.TenantID]id.PartyID, len(tenants))
	for _, t := range tenants {
		next[t.ID] = t.PartyID
	}
	s.mu.Lock()
	s.visible = next
	s.mu.Unlock()
	s.logger.DebugContext(ctx, "tenant visibility cache refreshed", "tenants", len(next))
	return nil
}

// VisibleParty returns the owning party of tenantID according to the cache.
func (s *Service) VisibleParty(tenantID id.TenantID) (id.PartyID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	partyID, ok := s.visible[tenantID]
	return partyID, ok
}

// CreateRole creates a role scoped to tenantID and links it to the tenant.
// The tenant must already be visible in the cache; a tenant created in the
// caller's own uncommitted transaction fails with CodeForbidden.
func (s *Service) CreateRole(ctx context.Context, tenantID id.TenantID, role *accessmodels.Role) error {
	if _, ok := s.VisibleParty(tenantID); !ok {
		return dErrors.Newf(dErrors.CodeForbidden, "tenant %s is not visible", tenantID)
	}
	if err := s.roles.CreateRole(ctx, role); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "create role")
	}
	if err := s.relations.Assign(ctx, relation.TenantRef(uuid.UUID(tenantID)), relation.Roles, uuid.UUID(role.ID)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "assign role to tenant")
	}
	s.logger.InfoContext(ctx, "role created",
		"role_id", role.ID, "role_code", role.Code, "tenant_id", tenantID)
	return nil
}
