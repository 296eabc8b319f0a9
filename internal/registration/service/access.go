package service

import (
	"context"

	"github.com/google/uuid"

	accessmodels "sokoni/internal/access/models"
	"sokoni/internal/access/secrets"
	"sokoni/internal/audit"
	"sokoni/internal/events"
	"sokoni/internal/registration/models"
	"sokoni/internal/registration/regerr"
	"sokoni/internal/relation"
	id "sokoni/pkg/domain"
)

// createAdministrator creates the user behind the administrator, grants it
// the admin role, verifies the grant, then creates the administrator record.
// The user's password is random and never used; authentication is OTP-based.
func (s *Service) createAdministrator(ctx context.Context, input *models.RegistrationInput, role *accessmodels.Role, tenantID id.TenantID, normalizedPhone string) (*accessmodels.Administrator, *accessmodels.User, error) {
	plaintext, err := secrets.GeneratePassword()
	if err != nil {
		return nil, nil, regerr.Wrap(err, regerr.CodeUserCreateFailed, "generate user password")
	}
	hash, err := secrets.Hash(plaintext)
	if err != nil {
		return nil, nil, regerr.Wrap(err, regerr.CodeUserCreateFailed, "hash user password")
	}

	user, err := accessmodels.NewUser(id.UserID(uuid.New()), normalizedPhone, hash, s.now())
	if err != nil {
		return nil, nil, regerr.Wrap(err, regerr.CodeUserCreateFailed, "build user")
	}
	if err := s.access.CreateUser(ctx, user); err != nil {
		return nil, nil, regerr.Wrapf(err, regerr.CodeUserCreateFailed, "create user %s", normalizedPhone)
	}

	userRef := relation.UserRef(uuid.UUID(user.ID))
	if err := s.assigner.Assign(ctx, userRef, relation.UserRoles, uuid.UUID(role.ID)); err != nil {
		return nil, nil, regerr.Wrapf(err, regerr.CodeUserAssignFailed,
			"assign role %s to user %s", role.ID, user.ID)
	}
	ok, err := s.assigner.Verify(ctx, userRef, relation.UserRoles, uuid.UUID(role.ID))
	if err != nil {
		return nil, nil, regerr.Wrapf(err, regerr.CodeUserAssignFailed,
			"verify role %s on user %s", role.ID, user.ID)
	}
	if !ok {
		return nil, nil, regerr.Newf(regerr.CodeUserAssignFailed,
			"user %s does not hold role %s after assignment", user.ID, role.ID)
	}

	admin, err := accessmodels.NewAdministrator(
		id.AdminID(uuid.New()),
		input.AdminIdentifier(normalizedPhone),
		input.AdminFirstName,
		input.AdminLastName,
		user.ID,
		s.now(),
	)
	if err != nil {
		return nil, nil, regerr.Wrap(err, regerr.CodeAdminCreateFailed, "build administrator")
	}
	if err := s.access.CreateAdministrator(ctx, admin); err != nil {
		return nil, nil, regerr.Wrapf(err, regerr.CodeAdminCreateFailed, "create administrator %s", admin.Identifier)
	}
	if admin.ID.IsNil() || admin.UserID.IsNil() {
		return nil, nil, regerr.Newf(regerr.CodeAdminCreateFailed,
			"administrator record for %s is incompletely linked", admin.Identifier)
	}

	s.auditEntityCreated(ctx, audit.EventUserCreated, tenantID, "user", user.ID.String(),
		"identifier", user.Identifier,
		"role_id", role.ID)
	s.auditEntityCreated(ctx, audit.EventAdminCreated, tenantID, "administrator", admin.ID.String(),
		"identifier", admin.Identifier,
		"user_id", admin.UserID)

	s.publishEvent(ctx, events.TypeUserCreated, tenantID, map[string]string{
		"user_id":    user.ID.String(),
		"identifier": user.Identifier,
	})
	s.publishEvent(ctx, events.TypeAdminCreated, tenantID, map[string]string{
		"admin_id":   admin.ID.String(),
		"first_name": admin.FirstName,
		"last_name":  admin.LastName,
	})
	return admin, user, nil
}

// publishEvent is fire-and-forget; a nil router is a no-op.
func (s *Service) publishEvent(ctx context.Context, eventType events.EventType, tenantID id.TenantID, data map[string]string) {
	if s.router == nil {
		return
	}
	s.router.Publish(ctx, events.Event{
		Type:     eventType,
		Category: events.CategorySystemNotifications,
		TenantID: tenantID,
		Data:     data,
	})
}
