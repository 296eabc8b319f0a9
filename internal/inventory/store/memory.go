// Package store provides stock location persistence.
package store

import (
	"context"
	"sync"

	"sokoni/internal/inventory/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

// InMemory is a map-backed stock location store for unit tests and local
// development.
type InMemory struct {
	mu   sync.RWMutex
	byID map[id.StockLocationID]*models.StockLocation
}

func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[id.StockLocationID]*models.StockLocation)}
}

func (s *InMemory) Create(_ context.Context, location *models.StockLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *location
	s.byID[location.ID] = &cp
	return nil
}

func (s *InMemory) FindByID(_ context.Context, locationID id.StockLocationID) (*models.StockLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	location, ok := s.byID[locationID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *location
	return &cp, nil
}
