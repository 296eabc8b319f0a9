package service

import (
	"context"

	accessmodels "sokoni/internal/access/models"
	"sokoni/internal/events"
	inventorymodels "sokoni/internal/inventory/models"
	paymentmodels "sokoni/internal/payment/models"
	tenantmodels "sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
)

// TenantStore persists tenants and owning parties.
type TenantStore interface {
	CreateIfCodeAvailable(ctx context.Context, tenant *tenantmodels.Tenant) error
	FindByID(ctx context.Context, tenantID id.TenantID) (*tenantmodels.Tenant, error)
	FindByCode(ctx context.Context, code string) (*tenantmodels.Tenant, error)
	First(ctx context.Context) (*tenantmodels.Tenant, error)
	CreateParty(ctx context.Context, party *tenantmodels.Party) error
	FindPartyByID(ctx context.Context, partyID id.PartyID) (*tenantmodels.Party, error)
	FindPartyByName(ctx context.Context, name string) (*tenantmodels.Party, error)
}

// StockLocationStore persists stock locations.
type StockLocationStore interface {
	Create(ctx context.Context, location *inventorymodels.StockLocation) error
	FindByID(ctx context.Context, locationID id.StockLocationID) (*inventorymodels.StockLocation, error)
}

// PaymentMethodStore persists payment methods. Create fails with
// sentinel.ErrNotFound when the method's handler is not registered.
type PaymentMethodStore interface {
	Create(ctx context.Context, method *paymentmodels.PaymentMethod) error
	FindByID(ctx context.Context, methodID id.PaymentMethodID) (*paymentmodels.PaymentMethod, error)
}

// AccessStore persists roles, users and administrators.
type AccessStore interface {
	CreateRole(ctx context.Context, role *accessmodels.Role) error
	FindRoleByID(ctx context.Context, roleID id.RoleID) (*accessmodels.Role, error)
	CreateUser(ctx context.Context, user *accessmodels.User) error
	FindUserByID(ctx context.Context, userID id.UserID) (*accessmodels.User, error)
	CreateAdministrator(ctx context.Context, admin *accessmodels.Administrator) error
	FindAdministratorByIdentifier(ctx context.Context, identifier string) (*accessmodels.Administrator, error)
}

// RoleService is the primary, scope-checked role creation path. Its
// visibility cache lags behind tenants created in the current transaction,
// so callers must be prepared to fall back to direct store creation.
type RoleService interface {
	CreateRole(ctx context.Context, tenantID id.TenantID, role *accessmodels.Role) error
}

// EventRouter accepts fire-and-forget domain events.
type EventRouter interface {
	Publish(ctx context.Context, event events.Event)
}
