package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sokoni/internal/audit"
	paymentmodels "sokoni/internal/payment/models"
	"sokoni/internal/registration/regerr"
	"sokoni/internal/relation"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
)

type paymentTemplate struct {
	handler     paymentmodels.HandlerCode
	name        string
	description string
}

// Exactly two methods per tenant, cash first.
var paymentTemplates = []paymentTemplate{
	{handler: paymentmodels.HandlerCash, name: "Cash", description: "Pay on delivery with cash"},
	{handler: paymentmodels.HandlerMpesa, name: "M-Pesa", description: "Pay with M-Pesa mobile money"},
}

// createAndAssignPaymentMethods creates the cash and mobile-money methods,
// assigns and verifies each, then cross-checks the tenant's total method
// count against the per-item verifies.
func (s *Service) createAndAssignPaymentMethods(ctx context.Context, tenantID id.TenantID) ([]*paymentmodels.PaymentMethod, error) {
	parent := relation.TenantRef(uuid.UUID(tenantID))
	methods := make([]*paymentmodels.PaymentMethod, 0, len(paymentTemplates))

	for _, tpl := range paymentTemplates {
		method, err := paymentmodels.NewPaymentMethod(
			id.PaymentMethodID(uuid.New()), tpl.handler, tenantID, tpl.name, tpl.description, s.now())
		if err != nil {
			return nil, regerr.Wrapf(err, regerr.CodePaymentMethodCreateFailed, "build %s payment method", tpl.handler)
		}
		if err := s.payments.Create(ctx, method); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, regerr.Newf(regerr.CodePaymentHandlerMissing,
					"payment handler %q is not registered; check the payment handler configuration", tpl.handler)
			}
			return nil, regerr.Wrapf(err, regerr.CodePaymentMethodCreateFailed, "create %s payment method", tpl.handler)
		}

		if err := s.assigner.Assign(ctx, parent, relation.PaymentMethods, uuid.UUID(method.ID)); err != nil {
			return nil, regerr.Wrapf(err, regerr.CodePaymentMethodAssignFailed,
				"assign payment method %s to tenant %s", method.ID, tenantID)
		}
		ok, err := s.assigner.Verify(ctx, parent, relation.PaymentMethods, uuid.UUID(method.ID))
		if err != nil {
			return nil, regerr.Wrapf(err, regerr.CodePaymentMethodAssignFailed,
				"verify payment method %s on tenant %s", method.ID, tenantID)
		}
		if !ok {
			return nil, regerr.Newf(regerr.CodePaymentMethodAssignFailed,
				"payment method %s is not attached to tenant %s after assignment", method.ID, tenantID)
		}

		s.auditEntityCreated(ctx, audit.EventEntityCreated, tenantID, "payment_method", method.ID.String(),
			"code", method.Code,
			"handler", string(method.Handler))
		methods = append(methods, method)
	}

	// Count-based cross-check, distinct from the per-item verifies.
	count, err := s.assigner.Count(ctx, parent, relation.PaymentMethods)
	if err != nil {
		return nil, regerr.Wrapf(err, regerr.CodePaymentMethodAssignFailed,
			"count payment methods of tenant %s", tenantID)
	}
	if count < len(paymentTemplates) {
		return nil, regerr.Newf(regerr.CodePaymentMethodAssignFailed,
			"tenant %s has %d payment methods attached, expected at least %d", tenantID, count, len(paymentTemplates))
	}
	return methods, nil
}
