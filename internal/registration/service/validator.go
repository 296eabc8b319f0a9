package service

import (
	"context"
	"errors"

	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	tenantmodels "sokoni/internal/tenant/models"
	"sokoni/pkg/platform/sentinel"
	"sokoni/pkg/requestcontext"
)

// validate runs the read-only pre-flight: currency membership, tenant-code
// uniqueness, admin-identifier uniqueness, and resolution of a default
// tenant carrying both default zones. It returns the default tenant whose
// zones the new tenant will copy.
func (s *Service) validate(ctx context.Context, input *models.RegistrationInput) (*tenantmodels.Tenant, error) {
	if !tenantmodels.Currency(input.Currency).IsValid() {
		return nil, regerr.Newf(regerr.CodeCurrencyInvalid, "currency %q is not supported", input.Currency)
	}

	_, err := s.tenants.FindByCode(ctx, input.CompanyCode)
	switch {
	case err == nil:
		return nil, regerr.Newf(regerr.CodeCodeExists, "company code %q is already registered", input.CompanyCode)
	case !errors.Is(err, sentinel.ErrNotFound):
		return nil, regerr.Wrapf(err, regerr.CodeProvisioningFailed, "look up company code %q", input.CompanyCode)
	}

	if email := input.AdminEmail; email != "" {
		_, err := s.access.FindAdministratorByIdentifier(ctx, email)
		switch {
		case err == nil:
			return nil, regerr.Newf(regerr.CodeEmailExists, "email %q is already registered", email)
		case !errors.Is(err, sentinel.ErrNotFound):
			return nil, regerr.Wrapf(err, regerr.CodeProvisioningFailed, "look up admin email")
		}
	}

	defaultTenant, err := s.resolveDefaultTenant(ctx)
	if err != nil {
		return nil, err
	}
	if !defaultTenant.HasDefaultZones() {
		return nil, regerr.Newf(regerr.CodeZonesMissing, "default tenant %s has no default geo/tax zones", defaultTenant.ID)
	}
	return defaultTenant, nil
}

// resolveDefaultTenant prefers the caller's current tenant, falling back to
// the first tenant in the system.
func (s *Service) resolveDefaultTenant(ctx context.Context) (*tenantmodels.Tenant, error) {
	if currentID := requestcontext.TenantID(ctx); !currentID.IsNil() {
		tenant, err := s.tenants.FindByID(ctx, currentID)
		if err == nil {
			return tenant, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, regerr.Wrap(err, regerr.CodeProvisioningFailed, "load current tenant")
		}
	}
	tenant, err := s.tenants.First(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, regerr.New(regerr.CodeZonesMissing, "no default tenant exists to copy zones from")
		}
		return nil, regerr.Wrap(err, regerr.CodeProvisioningFailed, "load default tenant")
	}
	return tenant, nil
}
