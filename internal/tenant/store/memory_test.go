package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

func newTestTenant(t *testing.T, code string) *models.Tenant {
	t.Helper()
	template := &models.Tenant{
		DefaultGeoZoneID: id.ZoneID(uuid.New()),
		DefaultTaxZoneID: id.ZoneID(uuid.New()),
	}
	tenant, err := models.NewTenant(
		id.TenantID(uuid.New()), code, models.CurrencyKES,
		id.PartyID(uuid.New()), template, time.Now(),
	)
	require.NoError(t, err)
	return tenant
}

func TestCreateIfCodeAvailableRejectsDuplicates(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	require.NoError(t, store.CreateIfCodeAvailable(ctx, newTestTenant(t, "acme")))

	err := store.CreateIfCodeAvailable(ctx, newTestTenant(t, "ACME"))
	assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
}

func TestFindByCodeIsCaseInsensitive(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	created := newTestTenant(t, "Acme")
	require.NoError(t, store.CreateIfCodeAvailable(ctx, created))

	found, err := store.FindByCode(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.FindByCode(ctx, "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestFirstReturnsOldestTenant(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	_, err := store.First(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	oldest := newTestTenant(t, "first")
	require.NoError(t, store.CreateIfCodeAvailable(ctx, oldest))
	require.NoError(t, store.CreateIfCodeAvailable(ctx, newTestTenant(t, "second")))

	first, err := store.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, oldest.ID, first.ID)
}

func TestListCommittedPreservesCreationOrder(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	a := newTestTenant(t, "a")
	b := newTestTenant(t, "b")
	require.NoError(t, store.CreateIfCodeAvailable(ctx, a))
	require.NoError(t, store.CreateIfCodeAvailable(ctx, b))

	listed, err := store.ListCommitted(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, a.ID, listed[0].ID)
	assert.Equal(t, b.ID, listed[1].ID)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	created := newTestTenant(t, "copyme")
	require.NoError(t, store.CreateIfCodeAvailable(ctx, created))

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	found.Code = "mutated"

	again, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "copyme", again.Code)
}

func TestPartyRoundTrip(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	party, err := models.NewParty(id.PartyID(uuid.New()), "Acme Traders", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.CreateParty(ctx, party))

	byID, err := store.FindPartyByID(ctx, party.ID)
	require.NoError(t, err)
	assert.Equal(t, party.Name, byID.Name)

	byName, err := store.FindPartyByName(ctx, "acme traders")
	require.NoError(t, err)
	assert.Equal(t, party.ID, byName.ID)

	_, err = store.FindPartyByID(ctx, id.PartyID(uuid.New()))
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
