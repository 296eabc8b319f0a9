// Package scope runs callbacks under a target tenant's owning party.
//
// The surrounding request context carries ambient state (transaction handle,
// request id); deriving a child context here keeps that state intact while
// the tenant and party fields are swapped for the callback's duration. The
// derived context is discarded on return, so the elevated scope can never
// leak into the caller or into concurrent requests.
package scope

import (
	"context"
	"log/slog"

	accessmodels "sokoni/internal/access/models"
	tenantmodels "sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
	"sokoni/pkg/requestcontext"
)

// TenantLoader reads tenants and their owning parties.
type TenantLoader interface {
	FindByID(ctx context.Context, tenantID id.TenantID) (*tenantmodels.Tenant, error)
	FindPartyByID(ctx context.Context, partyID id.PartyID) (*tenantmodels.Party, error)
}

// AdministratorLoader reads administrators for existence checks.
type AdministratorLoader interface {
	FindAdministratorByID(ctx context.Context, adminID id.AdminID) (*accessmodels.Administrator, error)
}

type options struct {
	logger *slog.Logger
	debug  bool
}

type Option func(*options)

// WithDebugLogging records scope entry, the resolved party id, and exit.
func WithDebugLogging(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
			o.debug = true
		}
	}
}

// WithOwningPartyScope loads tenantID's tenant and owning party, then runs fn
// with a context scoped to both. Fails when the tenant is missing or has no
// owning party. Errors from fn are returned unchanged, with the tenant id
// logged when debug logging is on.
func WithOwningPartyScope(ctx context.Context, loader TenantLoader, tenantID id.TenantID, fn func(ctx context.Context) error, opts ...Option) error {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	tenant, err := loader.FindByID(ctx, tenantID)
	if err != nil {
		return dErrors.Wrapf(err, dErrors.CodeNotFound, "tenant %s not found", tenantID)
	}
	if tenant.PartyID.IsNil() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "tenant %s has no owning party", tenantID)
	}
	party, err := loader.FindPartyByID(ctx, tenant.PartyID)
	if err != nil {
		return dErrors.Wrapf(err, dErrors.CodeNotFound, "owning party %s not found", tenant.PartyID)
	}

	if o.debug {
		o.logger.DebugContext(ctx, "entering owning-party scope",
			"tenant_id", tenantID, "party_id", party.ID)
	}

	scoped := requestcontext.WithTenantID(ctx, tenantID)
	scoped = requestcontext.WithPartyID(scoped, party.ID)

	if err := fn(scoped); err != nil {
		if o.debug {
			o.logger.DebugContext(ctx, "owning-party scope callback failed",
				"tenant_id", tenantID, "error", err)
		}
		return err
	}

	if o.debug {
		o.logger.DebugContext(ctx, "leaving owning-party scope", "tenant_id", tenantID)
	}
	return nil
}

// ValidateTenantExists checks that tenantID resolves to a tenant with an
// owning party, without entering a scope.
func ValidateTenantExists(ctx context.Context, loader TenantLoader, tenantID id.TenantID) error {
	tenant, err := loader.FindByID(ctx, tenantID)
	if err != nil {
		return dErrors.Wrapf(err, dErrors.CodeNotFound, "tenant %s not found", tenantID)
	}
	if tenant.PartyID.IsNil() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "tenant %s has no owning party", tenantID)
	}
	return nil
}

// ValidatePartyExists checks that partyID resolves to a party.
func ValidatePartyExists(ctx context.Context, loader TenantLoader, partyID id.PartyID) error {
	if _, err := loader.FindPartyByID(ctx, partyID); err != nil {
		return dErrors.Wrapf(err, dErrors.CodeNotFound, "owning party %s not found", partyID)
	}
	return nil
}

// ValidateAdministratorExists checks that adminID resolves to an
// administrator.
func ValidateAdministratorExists(ctx context.Context, loader AdministratorLoader, adminID id.AdminID) error {
	if _, err := loader.FindAdministratorByID(ctx, adminID); err != nil {
		return dErrors.Wrapf(err, dErrors.CodeNotFound, "administrator %s not found", adminID)
	}
	return nil
}
