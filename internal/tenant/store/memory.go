// Package store provides tenant and party persistence. Consumers declare the
// interfaces they need; this package ships the in-memory and PostgreSQL
// implementations.
package store

import (
	"context"
	"strings"
	"sync"

	"sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

// InMemory is a map-backed tenant store for unit tests and local development.
type InMemory struct {
	mu      sync.RWMutex
	byID    map[id.TenantID]*models.Tenant
	order   []id.TenantID
	parties map[id.PartyID]*models.Party
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:    make(map[id.TenantID]*models.Tenant),
		parties: make(map[id.PartyID]*models.Party),
	}
}

// CreateIfCodeAvailable inserts the tenant unless another tenant already
// holds the code (case-insensitive). Returns sentinel.ErrAlreadyUsed on
// collision.
func (s *InMemory) CreateIfCodeAvailable(_ context.Context, tenant *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if strings.EqualFold(existing.Code, tenant.Code) {
			return sentinel.ErrAlreadyUsed
		}
	}
	cp := *tenant
	s.byID[tenant.ID] = &cp
	s.order = append(s.order, tenant.ID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, tenantID id.TenantID) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tenant, ok := s.byID[tenantID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *tenant
	return &cp, nil
}

func (s *InMemory) FindByCode(_ context.Context, code string) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tenant := range s.byID {
		if strings.EqualFold(tenant.Code, code) {
			cp := *tenant
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// First returns the oldest tenant in the system, used to resolve the default
// tenant when the caller has no current tenant.
func (s *InMemory) First(_ context.Context) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.byID[s.order[0]]
	return &cp, nil
}

// ListCommitted returns all tenants in creation order. The in-memory store
// has no transaction buffer, so every write is committed immediately.
func (s *InMemory) ListCommitted(_ context.Context) ([]*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Tenant, 0, len(s.order))
	for _, tenantID := range s.order {
		cp := *s.byID[tenantID]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) CreateParty(_ context.Context, party *models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *party
	s.parties[party.ID] = &cp
	return nil
}

func (s *InMemory) FindPartyByID(_ context.Context, partyID id.PartyID) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	party, ok := s.parties[partyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *party
	return &cp, nil
}

func (s *InMemory) FindPartyByName(_ context.Context, name string) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, party := range s.parties {
		if strings.EqualFold(party.Name, name) {
			cp := *party
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}
