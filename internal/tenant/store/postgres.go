package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
	"sokoni/pkg/platform/tx"
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

// Postgres persists tenants and parties in PostgreSQL. Statements resolve the
// ambient transaction from the context.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) CreateIfCodeAvailable(ctx context.Context, tenant *models.Tenant) error {
	q := tx.Resolve(ctx, s.db)
	query := `
		INSERT INTO tenants (id, code, currency, status, party_id, default_geo_zone_id, default_tax_zone_id, created_at, updated_at)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.ExecContext(ctx, query,
		uuid.UUID(tenant.ID), tenant.Code, string(tenant.Currency), string(tenant.Status),
		uuid.UUID(tenant.PartyID), uuid.UUID(tenant.DefaultGeoZoneID), uuid.UUID(tenant.DefaultTaxZoneID),
		tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

const tenantColumns = `id, code, currency, status, party_id, default_geo_zone_id, default_tax_zone_id, created_at, updated_at`

func (s *Postgres) scanTenant(row *sql.Row) (*models.Tenant, error) {
	var t models.Tenant
	var tid, pid, geo, taxZone uuid.UUID
	var currency, status string
	err := row.Scan(&tid, &t.Code, &currency, &status, &pid, &geo, &taxZone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan tenant: %w", err)
	}
	t.ID = id.TenantID(tid)
	t.PartyID = id.PartyID(pid)
	t.DefaultGeoZoneID = id.ZoneID(geo)
	t.DefaultTaxZoneID = id.ZoneID(taxZone)
	t.Currency = models.Currency(currency)
	t.Status = models.TenantStatus(status)
	return &t, nil
}

func (s *Postgres) FindByID(ctx context.Context, tenantID id.TenantID) (*models.Tenant, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, uuid.UUID(tenantID))
	return s.scanTenant(row)
}

func (s *Postgres) FindByCode(ctx context.Context, code string) (*models.Tenant, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE code = lower($1)`, code)
	return s.scanTenant(row)
}

func (s *Postgres) First(ctx context.Context) (*models.Tenant, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY created_at ASC LIMIT 1`)
	return s.scanTenant(row)
}

// ListCommitted reads tenants straight from the pool, bypassing any ambient
// transaction, so callers see only committed rows. The access service's
// visibility cache refreshes through this and therefore lags tenants created
// in an open transaction.
func (s *Postgres) ListCommitted(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		var t models.Tenant
		var tid, pid, geo, taxZone uuid.UUID
		var currency, status string
		if err := rows.Scan(&tid, &t.Code, &currency, &status, &pid, &geo, &taxZone, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		t.ID = id.TenantID(tid)
		t.PartyID = id.PartyID(pid)
		t.DefaultGeoZoneID = id.ZoneID(geo)
		t.DefaultTaxZoneID = id.ZoneID(taxZone)
		t.Currency = models.Currency(currency)
		t.Status = models.TenantStatus(status)
		tenants = append(tenants, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenants: %w", err)
	}
	return tenants, nil
}

func (s *Postgres) CreateParty(ctx context.Context, party *models.Party) error {
	q := tx.Resolve(ctx, s.db)
	query := `INSERT INTO parties (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := q.ExecContext(ctx, query, uuid.UUID(party.ID), party.Name, party.CreatedAt); err != nil {
		return fmt.Errorf("create party: %w", err)
	}
	return nil
}

func (s *Postgres) findParty(ctx context.Context, where string, arg any) (*models.Party, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `SELECT id, name, created_at FROM parties WHERE `+where, arg)
	var party models.Party
	var pid uuid.UUID
	if err := row.Scan(&pid, &party.Name, &party.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan party: %w", err)
	}
	party.ID = id.PartyID(pid)
	return &party, nil
}

func (s *Postgres) FindPartyByID(ctx context.Context, partyID id.PartyID) (*models.Party, error) {
	return s.findParty(ctx, `id = $1`, uuid.UUID(partyID))
}

func (s *Postgres) FindPartyByName(ctx context.Context, name string) (*models.Party, error) {
	return s.findParty(ctx, `lower(name) = lower($1)`, name)
}
