// Package store provides payment method persistence. Creating a method whose
// handler is not registered fails with sentinel.ErrNotFound, which the
// provisioner surfaces as a configuration error rather than a create failure.
package store

import (
	"context"
	"sync"

	"sokoni/internal/payment/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

// InMemory is a map-backed payment method store for unit tests and local
// development. Handlers registered at construction gate creation the same
// way the production handler registry does.
type InMemory struct {
	mu       sync.RWMutex
	byID     map[id.PaymentMethodID]*models.PaymentMethod
	handlers map[models.HandlerCode]struct{}
}

// NewInMemory builds a store with the given registered handlers. With no
// arguments every known handler is registered.
func NewInMemory(handlers ...models.HandlerCode) *InMemory {
	if len(handlers) == 0 {
		handlers = []models.HandlerCode{models.HandlerCash, models.HandlerMpesa}
	}
	registered := make(map[models.HandlerCode]struct{}, len(handlers))
	for _, h := range handlers {
		registered[h] = struct{}{}
	}
	return &InMemory{
		byID:     make(map[id.PaymentMethodID]*models.PaymentMethod),
		handlers: registered,
	}
}

func (s *InMemory) Create(_ context.Context, method *models.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.handlers[method.Handler]; !ok {
		return sentinel.ErrNotFound
	}
	for _, existing := range s.byID {
		if existing.Code == method.Code {
			return sentinel.ErrAlreadyUsed
		}
	}
	cp := *method
	s.byID[method.ID] = &cp
	return nil
}

func (s *InMemory) FindByID(_ context.Context, methodID id.PaymentMethodID) (*models.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	method, ok := s.byID[methodID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *method
	return &cp, nil
}
