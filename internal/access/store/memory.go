// Package store persists roles, users and administrators.
package store

import (
	"context"
	"strings"
	"sync"

	"sokoni/internal/access/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

// InMemory is a map-backed access store for unit tests.
type InMemory struct {
	mu     sync.RWMutex
	roles  map[id.RoleID]*models.Role
	users  map[id.UserID]*models.User
	admins map[id.AdminID]*models.Administrator
}

func NewInMemory() *InMemory {
	return &InMemory{
		roles:  make(map[id.RoleID]*models.Role),
		users:  make(map[id.UserID]*models.User),
		admins: make(map[id.AdminID]*models.Administrator),
	}
}

func (s *InMemory) CreateRole(_ context.Context, role *models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.roles {
		if strings.EqualFold(existing.Code, role.Code) {
			return sentinel.ErrAlreadyUsed
		}
	}
	cp := *role
	cp.Permissions = append([]models.Permission(nil), role.Permissions...)
	s.roles[role.ID] = &cp
	return nil
}

func (s *InMemory) FindRoleByID(_ context.Context, roleID id.RoleID) (*models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.roles[roleID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyRole(role), nil
}

func (s *InMemory) FindRoleByCode(_ context.Context, code string) (*models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, role := range s.roles {
		if strings.EqualFold(role.Code, code) {
			return copyRole(role), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Identifier, user.Identifier) {
			return sentinel.ErrAlreadyUsed
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *InMemory) FindUserByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *InMemory) CreateAdministrator(_ context.Context, admin *models.Administrator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if strings.EqualFold(existing.Identifier, admin.Identifier) {
			return sentinel.ErrAlreadyUsed
		}
	}
	cp := *admin
	s.admins[admin.ID] = &cp
	return nil
}

func (s *InMemory) FindAdministratorByID(_ context.Context, adminID id.AdminID) (*models.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	admin, ok := s.admins[adminID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *admin
	return &cp, nil
}

func (s *InMemory) FindAdministratorByIdentifier(_ context.Context, identifier string) (*models.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if strings.EqualFold(admin.Identifier, identifier) {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func copyRole(role *models.Role) *models.Role {
	cp := *role
	cp.Permissions = append([]models.Permission(nil), role.Permissions...)
	return &cp
}
