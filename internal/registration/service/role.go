package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	accessmodels "sokoni/internal/access/models"
	"sokoni/internal/audit"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	"sokoni/internal/relation"
	id "sokoni/pkg/domain"
)

// roleCreationStrategy is one way of creating and attaching the admin role.
// The primary strategy goes through the scope-checked role service; the
// fallback creates directly against the store and assigns through the join
// relation. The fallback exists because the role service's visibility cache
// rejects tenants created in the current transaction.
type roleCreationStrategy struct {
	name   string
	create func(ctx context.Context) error
}

// createAdminRole builds the tenant's admin role with the fixed permission
// set and attaches it, trying each strategy in order until one succeeds.
// Whichever path ran, the role-tenant link is re-verified by reload.
func (s *Service) createAdminRole(ctx context.Context, input *models.RegistrationInput, tenantID id.TenantID) (*accessmodels.Role, error) {
	role, err := accessmodels.NewRole(
		id.RoleID(uuid.New()),
		accessmodels.AdminRoleCode(input.CompanyCode),
		fmt.Sprintf("Administrator role for %s", input.CompanyName),
		accessmodels.AdminPermissions(),
		s.now(),
	)
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeRoleCreateFailed, "build admin role for %q", input.CompanyCode)
	}

	strategies := []roleCreationStrategy{
		{
			name: "service",
			create: func(ctx context.Context) error {
				return s.roleSvc.CreateRole(ctx, tenantID, role)
			},
		},
		{
			name: "store",
			create: func(ctx context.Context) error {
				if err := s.access.CreateRole(ctx, role); err != nil {
					return err
				}
				return s.assigner.Assign(ctx, relation.TenantRef(uuid.UUID(tenantID)), relation.Roles, uuid.UUID(role.ID))
			},
		},
	}
	if err := s.createWithFallback(ctx, tenantID, strategies); err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeRoleCreateFailed, "create admin role for %q", input.CompanyCode)
	}

	ok, err := s.assigner.Verify(ctx, relation.TenantRef(uuid.UUID(tenantID)), relation.Roles, uuid.UUID(role.ID))
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeRoleAssignFailed,
			"verify role %s on tenant %s", role.ID, tenantID)
	}
	if !ok {
		return nil, regerr.Newf(regerr.CodeRoleAssignFailed,
			"role %s is not attached to tenant %s after creation", role.ID, tenantID)
	}

	s.auditEntityCreated(ctx, audit.EventEntityCreated, tenantID, "role", role.ID.String(),
		"code", role.Code,
		"permissions", fmt.Sprintf("%d", len(role.Permissions)))
	return role, nil
}

// createWithFallback tries each strategy in order, returning nil on the
// first success. Only the last strategy's error surfaces; earlier failures
// are logged as the expected fallback trigger.
func (s *Service) createWithFallback(ctx context.Context, tenantID id.TenantID, strategies []roleCreationStrategy) error {
	var lastErr error
	for _, strategy := range strategies {
		if lastErr != nil {
			s.logger.DebugContext(ctx, "role creation strategy failed, trying next",
				"tenant_id", tenantID, "error", lastErr, "next", strategy.name)
		}
		if lastErr = strategy.create(ctx); lastErr == nil {
			return nil
		}
	}
	return lastErr
}
