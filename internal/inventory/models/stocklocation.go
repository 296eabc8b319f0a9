// Package models defines the inventory entities. A stock location is the
// physical store/warehouse inventory is tracked against; it belongs to one or
// more tenants via the tenant's stock_locations relation.
package models

import (
	"time"

	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
)

type StockLocation struct {
	ID          id.StockLocationID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
}

// NewStockLocation constructs a stock location. Name must already be trimmed;
// callers trim and reject blank names before reaching this constructor.
func NewStockLocation(locationID id.StockLocationID, name, description string, now time.Time) (*StockLocation, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stock location name cannot be empty")
	}
	return &StockLocation{
		ID:          locationID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
	}, nil
}
