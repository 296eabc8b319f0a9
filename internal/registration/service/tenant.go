package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sokoni/internal/audit"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	tenantmodels "sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

// createTenant materializes the isolation boundary: code from the company
// code, currency from input, default zones copied from the default tenant,
// status UNAPPROVED.
func (s *Service) createTenant(ctx context.Context, input *models.RegistrationInput, defaultTenant *tenantmodels.Tenant, party *tenantmodels.Party) (*tenantmodels.Tenant, error) {
	tenant, err := tenantmodels.NewTenant(
		id.TenantID(uuid.New()),
		input.CompanyCode,
		tenantmodels.Currency(input.Currency),
		party.ID,
		defaultTenant,
		s.now(),
	)
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeTenantCreateFailed, "build tenant for %q", input.CompanyCode)
	}

	if err := s.tenants.CreateIfCodeAvailable(ctx, tenant); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			// Lost a race with a concurrent registration after pre-flight.
			return nil, regerr.Newf(regerr.CodeCodeExists, "company code %q is already registered", input.CompanyCode)
		}
		return nil, regerr.Wrapf(err, regerr.CodeTenantCreateFailed, "create tenant for %q", input.CompanyCode)
	}

	s.auditEntityCreated(ctx, audit.EventTenantCreated, tenant.ID, "tenant", tenant.ID.String(),
		"code", tenant.Code,
		"currency", string(tenant.Currency),
		"status", string(tenant.Status),
		"party_id", tenant.PartyID)
	return tenant, nil
}
