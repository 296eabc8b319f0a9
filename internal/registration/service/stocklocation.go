package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sokoni/internal/audit"
	inventorymodels "sokoni/internal/inventory/models"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	"sokoni/internal/relation"
	id "sokoni/pkg/domain"
)

// createAndAssignStockLocation creates the tenant's physical store and
// attaches it through the join relation, verifying the attachment before
// returning.
func (s *Service) createAndAssignStockLocation(ctx context.Context, input *models.RegistrationInput, tenantID id.TenantID) (*inventorymodels.StockLocation, error) {
	name := strings.TrimSpace(input.StoreName)
	if name == "" {
		return nil, regerr.New(regerr.CodeStoreNameRequired, "store name cannot be empty")
	}

	location, err := inventorymodels.NewStockLocation(id.StockLocationID(uuid.New()), name, strings.TrimSpace(input.StoreAddress), s.now())
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeStockLocationCreateFailed, "build stock location %q", name)
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeStockLocationCreateFailed, "create stock location %q", name)
	}

	parent := relation.TenantRef(uuid.UUID(tenantID))
	if err := s.assigner.Assign(ctx, parent, relation.StockLocations, uuid.UUID(location.ID)); err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeStockLocationAssignFailed,
			"assign stock location %s to tenant %s", location.ID, tenantID)
	}
	ok, err := s.assigner.Verify(ctx, parent, relation.StockLocations, uuid.UUID(location.ID))
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodeStockLocationAssignFailed,
			"verify stock location %s on tenant %s", location.ID, tenantID)
	}
	if !ok {
		return nil, regerr.Newf(regerr.CodeStockLocationAssignFailed,
			"stock location %s is not attached to tenant %s after assignment", location.ID, tenantID)
	}

	s.auditEntityCreated(ctx, audit.EventEntityCreated, tenantID, "stock_location", location.ID.String(),
		"name", location.Name)
	return location, nil
}
