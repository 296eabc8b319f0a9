package relation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// VisibilityFilter decides whether a join row is visible to readers. The
// in-memory store uses it to reproduce the production failure mode where the
// service layer's permission cache hides a relation that was just written in
// the same transaction. Return false to hide the row.
type VisibilityFilter func(parent Ref, rel Name, childID uuid.UUID) bool

type memberKey struct {
	parent Ref
	rel    Name
}

// InMemory is a map-backed join store for unit tests and local development.
type InMemory struct {
	mu      sync.RWMutex
	members map[memberKey][]uuid.UUID
	filter  VisibilityFilter
}

func NewInMemory() *InMemory {
	return &InMemory{members: make(map[memberKey][]uuid.UUID)}
}

// SetVisibilityFilter installs a read-side filter. Passing nil restores full
// visibility.
func (s *InMemory) SetVisibilityFilter(f VisibilityFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *InMemory) Assign(_ context.Context, parent Ref, rel Name, childID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey{parent: parent, rel: rel}
	for _, existing := range s.members[key] {
		if existing == childID {
			return nil
		}
	}
	s.members[key] = append(s.members[key], childID)
	return nil
}

func (s *InMemory) Members(_ context.Context, parent Ref, rel Name) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.members[memberKey{parent: parent, rel: rel}]
	out := make([]uuid.UUID, 0, len(all))
	for _, childID := range all {
		if s.filter != nil && !s.filter(parent, rel, childID) {
			continue
		}
		out = append(out, childID)
	}
	return out, nil
}
