package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessmodels "sokoni/internal/access/models"
	accessstore "sokoni/internal/access/store"
	inventorystore "sokoni/internal/inventory/store"
	paymentstore "sokoni/internal/payment/store"
	"sokoni/internal/ratelimit"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	"sokoni/internal/registration/service"
	"sokoni/internal/relation"
	tenantmodels "sokoni/internal/tenant/models"
	tenantstore "sokoni/internal/tenant/store"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/tx"
)

type fallbackOnlyRoleService struct{}

func (fallbackOnlyRoleService) CreateRole(context.Context, id.TenantID, *accessmodels.Role) error {
	return regerr.New(regerr.CodeRoleCreateFailed, "tenant is not visible")
}

func newTestRouter(t *testing.T, limiter *ratelimit.Limiter) http.Handler {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	tenants := tenantstore.NewInMemory()
	party, err := tenantmodels.NewParty(id.PartyID(uuid.New()), "platform", now)
	require.NoError(t, err)
	require.NoError(t, tenants.CreateParty(ctx, party))
	require.NoError(t, tenants.CreateIfCodeAvailable(ctx, &tenantmodels.Tenant{
		ID:               id.TenantID(uuid.New()),
		Code:             "default",
		Currency:         "KES",
		Status:           tenantmodels.TenantStatusApproved,
		PartyID:          party.ID,
		DefaultGeoZoneID: id.ZoneID(uuid.New()),
		DefaultTaxZoneID: id.ZoneID(uuid.New()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}))

	svc := service.New(tenants, inventorystore.NewInMemory(), paymentstore.NewInMemory(),
		accessstore.NewInMemory(), fallbackOnlyRoleService{}, relation.NewInMemory())

	h := New(svc, tx.Passthrough{}, slog.Default(), nil, limiter)
	router := chi.NewRouter()
	h.Register(router)
	return router
}

func postRegistration(t *testing.T, router http.Handler, input models.RegistrationInput) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(input)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validInput() models.RegistrationInput {
	return models.RegistrationInput{
		CompanyName:      "Acme Wholesale",
		CompanyCode:      "acme",
		Currency:         "KES",
		AdminFirstName:   "Wanjiku",
		AdminLastName:    "Mwangi",
		AdminPhoneNumber: "0712345678",
		StoreName:        "Main Store",
	}
}

func TestHandleRegisterSuccess(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postRegistration(t, router, validInput())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result models.ProvisionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.TenantID.IsNil())
	assert.False(t, result.AdminID.IsNil())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleRegisterDuplicateCodeConflicts(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postRegistration(t, router, validInput())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postRegistration(t, router, validInput())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "REGISTRATION_CODE_EXISTS")
}

func TestHandleRegisterBadBody(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRegisterInvalidCurrency(t *testing.T) {
	router := newTestRouter(t, nil)

	input := validInput()
	input.Currency = "XXX"
	rec := postRegistration(t, router, input)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "REGISTRATION_CURRENCY_INVALID")
}

func TestHandleRegisterThrottled(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 1, time.Minute)
	router := newTestRouter(t, limiter)

	// A failed attempt keeps its slot in the window.
	input := validInput()
	input.Currency = "XXX"
	rec := postRegistration(t, router, input)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The retry from the same phone exceeds the budget before any
	// database work happens.
	input.Currency = "KES"
	rec = postRegistration(t, router, input)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHandleRegisterSuccessResetsThrottle(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 1, time.Minute)
	router := newTestRouter(t, limiter)

	rec := postRegistration(t, router, validInput())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The successful registration cleared the counter, so the same phone
	// has its full budget back inside the window.
	assert.NoError(t, limiter.Allow(context.Background(), "+254712345678"))
}
