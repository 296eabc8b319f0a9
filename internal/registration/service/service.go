// Package service orchestrates tenant provisioning: one registration request
// becomes a tenant, a stock location, two payment methods, an admin role and
// an administrator/user pair, all inside the caller's ambient transaction.
//
// The pipeline is a rollback-only saga. No step compensates; any failure
// propagates out and the transaction rollback undoes everything. Every
// many-to-many link is verified by reload before the pipeline proceeds,
// because the service layer's visibility cache can lag behind writes made in
// the same transaction.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	accessmodels "sokoni/internal/access/models"
	inventorymodels "sokoni/internal/inventory/models"
	"sokoni/internal/registration/assign"
	"sokoni/internal/registration/metrics"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/phone"
	"sokoni/internal/registration/regerr"
	"sokoni/internal/registration/scope"
	"sokoni/internal/relation"
)

// Service runs the provisioning pipeline.
type Service struct {
	tenants   TenantStore
	locations StockLocationStore
	payments  PaymentMethodStore
	access    AccessStore
	roleSvc   RoleService
	assigner  *assign.Assigner

	logger  *slog.Logger
	auditor AuditPublisher
	router  EventRouter
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithAuditPublisher(auditor AuditPublisher) Option {
	return func(s *Service) { s.auditor = auditor }
}

func WithEventRouter(router EventRouter) Option {
	return func(s *Service) { s.router = router }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithClock overrides the time source. Tests use it for deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(tenants TenantStore, locations StockLocationStore, payments PaymentMethodStore, access AccessStore, roleSvc RoleService, relations relation.Store, opts ...Option) *Service {
	s := &Service{
		tenants:   tenants,
		locations: locations,
		payments:  payments,
		access:    access,
		roleSvc:   roleSvc,
		assigner:  assign.New(relations),
		logger:    slog.Default(),
		tracer:    noop.NewTracerProvider().Tracer("registration"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProvisionCustomer runs the full pipeline and returns the ids of everything
// it created. The caller supplies the ambient transaction; a returned error
// means the transaction must be rolled back.
func (s *Service) ProvisionCustomer(ctx context.Context, input *models.RegistrationInput) (*models.ProvisionResult, error) {
	started := s.now()
	ctx, span := s.tracer.Start(ctx, "registration.provision")
	defer span.End()

	result, err := s.provision(ctx, input)
	elapsed := s.now().Sub(started)
	if err != nil {
		// Wrap-if-uncoded: errors already carrying a registration code
		// pass through so the caller sees the exact failing step.
		err = regerr.Wrapf(err, regerr.CodeProvisioningFailed, "provisioning failed for company %q", input.CompanyCode)
		span.RecordError(err)
		if s.metrics != nil {
			s.metrics.RecordFailure(string(regerr.CodeOf(err)), elapsed)
		}
		s.logger.ErrorContext(ctx, "registration failed",
			"company_code", input.CompanyCode, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("tenant.id", result.TenantID.String()))
	if s.metrics != nil {
		s.metrics.RecordSuccess(elapsed)
	}
	s.logger.InfoContext(ctx, "registration provisioned",
		"company_code", input.CompanyCode,
		"tenant_id", result.TenantID,
		"admin_id", result.AdminID)
	return result, nil
}

func (s *Service) provision(ctx context.Context, input *models.RegistrationInput) (*models.ProvisionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Normalized once, threaded through every step.
	normalizedPhone, err := phone.Normalize(input.AdminPhoneNumber)
	if err != nil {
		return nil, err
	}

	defaultTenant, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	party, err := s.ensureOwningParty(ctx, input)
	if err != nil {
		return nil, err
	}

	tenant, err := s.createTenant(ctx, input, defaultTenant, party)
	if err != nil {
		return nil, err
	}

	// Everything after the tenant write runs scoped to the new tenant and
	// its owning party, so provisioners and the audit trail see the tenant
	// being built rather than the caller's own tenancy.
	var (
		location *inventorymodels.StockLocation
		role     *accessmodels.Role
		admin    *accessmodels.Administrator
		user     *accessmodels.User
	)
	err = scope.WithOwningPartyScope(ctx, s.tenants, tenant.ID, func(ctx context.Context) error {
		location, err = s.createAndAssignStockLocation(ctx, input, tenant.ID)
		if err != nil {
			return err
		}

		if _, err := s.createAndAssignPaymentMethods(ctx, tenant.ID); err != nil {
			return err
		}

		role, err = s.createAdminRole(ctx, input, tenant.ID)
		if err != nil {
			return err
		}

		admin, user, err = s.createAdministrator(ctx, input, role, tenant.ID, normalizedPhone)
		return err
	}, scope.WithDebugLogging(s.logger))
	if err != nil {
		return nil, err
	}

	// A provisioner returning a superficially valid but unlinked
	// administrator must not escape as success.
	if admin.UserID.IsNil() {
		return nil, regerr.Newf(regerr.CodeAdminCreateFailed, "administrator %s has no linked user", admin.ID)
	}

	return &models.ProvisionResult{
		TenantID:        tenant.ID,
		StockLocationID: location.ID,
		RoleID:          role.ID,
		AdminID:         admin.ID,
		UserID:          user.ID,
	}, nil
}
