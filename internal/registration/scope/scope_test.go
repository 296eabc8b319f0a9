package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tenantmodels "sokoni/internal/tenant/models"
	tenantstore "sokoni/internal/tenant/store"
	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
	"sokoni/pkg/requestcontext"
)

func seedTenant(t *testing.T, store *tenantstore.InMemory, partyID id.PartyID) *tenantmodels.Tenant {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	party := &tenantmodels.Party{ID: partyID, Name: "acme wholesale", CreatedAt: now}
	require.NoError(t, store.CreateParty(ctx, party))

	tenant := &tenantmodels.Tenant{
		ID:               id.TenantID(uuid.New()),
		Code:             "acme",
		Currency:         "KES",
		Status:           tenantmodels.TenantStatusUnapproved,
		PartyID:          partyID,
		DefaultGeoZoneID: id.ZoneID(uuid.New()),
		DefaultTaxZoneID: id.ZoneID(uuid.New()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, store.CreateIfCodeAvailable(ctx, tenant))
	return tenant
}

func TestWithOwningPartyScope(t *testing.T) {
	store := tenantstore.NewInMemory()
	partyID := id.PartyID(uuid.New())
	tenant := seedTenant(t, store, partyID)

	base := requestcontext.WithRequestID(context.Background(), "req-1")

	var seenTenant id.TenantID
	var seenParty id.PartyID
	err := WithOwningPartyScope(base, store, tenant.ID, func(ctx context.Context) error {
		seenTenant = requestcontext.TenantID(ctx)
		seenParty = requestcontext.PartyID(ctx)
		assert.Equal(t, "req-1", requestcontext.RequestID(ctx), "ambient request state must survive scoping")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, tenant.ID, seenTenant)
	assert.Equal(t, partyID, seenParty)

	// The base context is untouched after the callback returns.
	assert.True(t, requestcontext.TenantID(base).IsNil())
	assert.True(t, requestcontext.PartyID(base).IsNil())
}

func TestWithOwningPartyScopeTenantMissing(t *testing.T) {
	store := tenantstore.NewInMemory()

	err := WithOwningPartyScope(context.Background(), store, id.TenantID(uuid.New()), func(context.Context) error {
		t.Fatal("callback must not run for a missing tenant")
		return nil
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestWithOwningPartyScopePropagatesCallbackError(t *testing.T) {
	store := tenantstore.NewInMemory()
	tenant := seedTenant(t, store, id.PartyID(uuid.New()))

	sentinel := errors.New("callback failed")
	err := WithOwningPartyScope(context.Background(), store, tenant.ID, func(context.Context) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestValidateTenantExists(t *testing.T) {
	store := tenantstore.NewInMemory()
	tenant := seedTenant(t, store, id.PartyID(uuid.New()))

	require.NoError(t, ValidateTenantExists(context.Background(), store, tenant.ID))

	err := ValidateTenantExists(context.Background(), store, id.TenantID(uuid.New()))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestValidatePartyExists(t *testing.T) {
	store := tenantstore.NewInMemory()
	partyID := id.PartyID(uuid.New())
	seedTenant(t, store, partyID)

	require.NoError(t, ValidatePartyExists(context.Background(), store, partyID))
	assert.Error(t, ValidatePartyExists(context.Background(), store, id.PartyID(uuid.New())))
}
