// Package relation exposes the store's native many-to-many join mechanism.
//
// Entity stores own their rows; cross-entity membership (which stock
// locations, payment methods, and roles a tenant carries, which roles a user
// holds) lives in join relations addressed by a parent reference and a
// relation name. The provisioning pipeline never trusts a join write until it
// has re-read the members through this interface, because the service layer's
// permission/visibility cache can lag behind same-transaction writes.
package relation

import (
	"context"

	"github.com/google/uuid"
)

// Kind names the parent entity family of a relation.
type Kind string

const (
	KindTenant Kind = "tenant"
	KindUser   Kind = "user"
)

// Name identifies a join relation under a parent kind.
type Name string

const (
	// Tenant relations.
	StockLocations Name = "stock_locations"
	PaymentMethods Name = "payment_methods"
	Roles          Name = "roles"

	// User relations.
	UserRoles Name = "user_roles"
)

// Ref addresses the parent side of a join.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

func TenantRef(id uuid.UUID) Ref { return Ref{Kind: KindTenant, ID: id} }
func UserRef(id uuid.UUID) Ref   { return Ref{Kind: KindUser, ID: id} }

// Store is the join mechanism. Assign adds childID under parent's named
// relation; Members reloads the relation's membership. Implementations must
// make Assign durable within the active ambient transaction, not merely
// buffered: a Members call immediately after Assign on the same connection
// must observe the child unless the visibility layer is stale.
type Store interface {
	Assign(ctx context.Context, parent Ref, rel Name, childID uuid.UUID) error
	Members(ctx context.Context, parent Ref, rel Name) ([]uuid.UUID, error)
}
