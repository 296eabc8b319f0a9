package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	tenantmodels "sokoni/internal/tenant/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

// ensureOwningParty resolves the tenant's owning party, creating one named
// after the company when none exists yet.
func (s *Service) ensureOwningParty(ctx context.Context, input *models.RegistrationInput) (*tenantmodels.Party, error) {
	party, err := s.tenants.FindPartyByName(ctx, input.CompanyName)
	if err == nil {
		return party, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, regerr.Wrapf(err, regerr.CodeSellerCreateFailed, "look up owning party %q", input.CompanyName)
	}

	party, err = tenantmodels.NewParty(id.PartyID(uuid.New()), input.CompanyName, s.now())
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeSellerCreateFailed, "build owning party %q", input.CompanyName)
	}
	if err := s.tenants.CreateParty(ctx, party); err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeSellerCreateFailed, "create owning party %q", input.CompanyName)
	}
	s.logger.DebugContext(ctx, "owning party created", "party_id", party.ID, "name", party.Name)
	return party, nil
}
