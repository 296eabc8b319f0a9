package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sokoni/internal/inventory/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
	"sokoni/pkg/platform/tx"
)

// Postgres persists stock locations in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, location *models.StockLocation) error {
	q := tx.Resolve(ctx, s.db)
	query := `INSERT INTO stock_locations (id, name, description, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := q.ExecContext(ctx, query, uuid.UUID(location.ID), location.Name, location.Description, location.CreatedAt); err != nil {
		return fmt.Errorf("create stock location: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, locationID id.StockLocationID) (*models.StockLocation, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `SELECT id, name, description, created_at FROM stock_locations WHERE id = $1`, uuid.UUID(locationID))
	var location models.StockLocation
	var lid uuid.UUID
	if err := row.Scan(&lid, &location.Name, &location.Description, &location.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan stock location: %w", err)
	}
	location.ID = id.StockLocationID(lid)
	return &location, nil
}
