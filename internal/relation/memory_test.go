package relation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignIsIdempotent(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	parent := TenantRef(uuid.New())
	child := uuid.New()

	require.NoError(t, store.Assign(ctx, parent, StockLocations, child))
	require.NoError(t, store.Assign(ctx, parent, StockLocations, child))

	members, err := store.Members(ctx, parent, StockLocations)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{child}, members)
}

func TestRelationsAreIsolatedByNameAndParent(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	tenant := TenantRef(uuid.New())
	other := TenantRef(uuid.New())
	child := uuid.New()

	require.NoError(t, store.Assign(ctx, tenant, Roles, child))

	members, err := store.Members(ctx, tenant, PaymentMethods)
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = store.Members(ctx, other, Roles)
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = store.Members(ctx, tenant, Roles)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{child}, members)
}

func TestVisibilityFilterHidesRows(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	parent := UserRef(uuid.New())
	visible := uuid.New()
	hidden := uuid.New()
	require.NoError(t, store.Assign(ctx, parent, UserRoles, visible))
	require.NoError(t, store.Assign(ctx, parent, UserRoles, hidden))

	store.SetVisibilityFilter(func(_ Ref, _ Name, childID uuid.UUID) bool {
		return childID != hidden
	})
	members, err := store.Members(ctx, parent, UserRoles)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{visible}, members)

	store.SetVisibilityFilter(nil)
	members, err = store.Members(ctx, parent, UserRoles)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{visible, hidden}, members)
}
