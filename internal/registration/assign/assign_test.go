package assign

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoni/internal/relation"
)

func TestAssignThenVerify(t *testing.T) {
	store := relation.NewInMemory()
	assigner := New(store)
	ctx := context.Background()

	parent := relation.TenantRef(uuid.New())
	child := uuid.New()

	require.NoError(t, assigner.Assign(ctx, parent, relation.StockLocations, child))

	ok, err := assigner.Verify(ctx, parent, relation.StockLocations, child)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyAbsentIsFalseNotError(t *testing.T) {
	assigner := New(relation.NewInMemory())
	ctx := context.Background()

	ok, err := assigner.Verify(ctx, relation.TenantRef(uuid.New()), relation.Roles, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyIsIdempotent(t *testing.T) {
	store := relation.NewInMemory()
	assigner := New(store)
	ctx := context.Background()

	parent := relation.TenantRef(uuid.New())
	child := uuid.New()
	require.NoError(t, assigner.Assign(ctx, parent, relation.PaymentMethods, child))

	first, err := assigner.Verify(ctx, parent, relation.PaymentMethods, child)
	require.NoError(t, err)
	second, err := assigner.Verify(ctx, parent, relation.PaymentMethods, child)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	missing := uuid.New()
	first, err = assigner.Verify(ctx, parent, relation.PaymentMethods, missing)
	require.NoError(t, err)
	second, err = assigner.Verify(ctx, parent, relation.PaymentMethods, missing)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifySeesStaleCache(t *testing.T) {
	store := relation.NewInMemory()
	assigner := New(store)
	ctx := context.Background()

	parent := relation.TenantRef(uuid.New())
	child := uuid.New()
	require.NoError(t, assigner.Assign(ctx, parent, relation.Roles, child))

	// A stale visibility layer hides the fresh join row.
	store.SetVisibilityFilter(func(relation.Ref, relation.Name, uuid.UUID) bool { return false })

	ok, err := assigner.Verify(ctx, parent, relation.Roles, child)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	store := relation.NewInMemory()
	assigner := New(store)
	ctx := context.Background()

	parent := relation.TenantRef(uuid.New())
	require.NoError(t, assigner.Assign(ctx, parent, relation.PaymentMethods, uuid.New()))
	require.NoError(t, assigner.Assign(ctx, parent, relation.PaymentMethods, uuid.New()))

	count, err := assigner.Count(ctx, parent, relation.PaymentMethods)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
