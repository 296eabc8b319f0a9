// Package assign implements the assign-then-verify protocol every
// provisioner uses for many-to-many links.
//
// The service layer's permission cache can lag behind a write made in the
// same transaction, so an assignment is never trusted until the membership
// has been re-read through the store. Verify returns false rather than an
// error for any form of absence; the caller decides whether absence is
// fatal.
package assign

import (
	"context"

	"github.com/google/uuid"

	"sokoni/internal/relation"
	dErrors "sokoni/pkg/domain-errors"
)

// Assigner wraps a relation store with the reload-after-write discipline.
type Assigner struct {
	store relation.Store
}

func New(store relation.Store) *Assigner {
	return &Assigner{store: store}
}

// Assign adds childID under parent's named relation and reloads the
// membership so the write is durably visible in the active transaction, not
// merely buffered.
func (a *Assigner) Assign(ctx context.Context, parent relation.Ref, rel relation.Name, childID uuid.UUID) error {
	if err := a.store.Assign(ctx, parent, rel, childID); err != nil {
		return dErrors.Wrapf(err, dErrors.CodeInternal, "assign %s to %s %s", rel, parent.Kind, parent.ID)
	}
	if _, err := a.store.Members(ctx, parent, rel); err != nil {
		return dErrors.Wrapf(err, dErrors.CodeInternal, "reload %s of %s %s", rel, parent.Kind, parent.ID)
	}
	return nil
}

// Verify reloads parent's relation and checks membership by id. Absence of
// the parent, the relation, or the child all report false, not an error; the
// error return is reserved for the reload itself failing.
func (a *Assigner) Verify(ctx context.Context, parent relation.Ref, rel relation.Name, childID uuid.UUID) (bool, error) {
	members, err := a.store.Members(ctx, parent, rel)
	if err != nil {
		return false, dErrors.Wrapf(err, dErrors.CodeInternal, "reload %s of %s %s", rel, parent.Kind, parent.ID)
	}
	for _, member := range members {
		if member == childID {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the current membership size of parent's relation.
func (a *Assigner) Count(ctx context.Context, parent relation.Ref, rel relation.Name) (int, error) {
	members, err := a.store.Members(ctx, parent, rel)
	if err != nil {
		return 0, dErrors.Wrapf(err, dErrors.CodeInternal, "count %s of %s %s", rel, parent.Kind, parent.ID)
	}
	return len(members), nil
}
