package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"sokoni/internal/access/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
	"sokoni/pkg/platform/tx"
)

const uniqueViolation = "23505"

// Postgres persists roles, users and administrators. Role permissions are
// stored as a text array column.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) CreateRole(ctx context.Context, role *models.Role) error {
	q := tx.Resolve(ctx, s.db)
	perms := make([]string, len(role.Permissions))
	for i, p := range role.Permissions {
		perms[i] = string(p)
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO roles (id, code, description, permissions, created_at)
		VALUES ($1, lower($2), $3, $4, $5)`,
		role.ID.String(), role.Code, role.Description, pq.Array(perms), role.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

func (s *Postgres) FindRoleByID(ctx context.Context, roleID id.RoleID) (*models.Role, error) {
	return s.findRole(ctx, `WHERE id = $1`, roleID.String())
}

func (s *Postgres) FindRoleByCode(ctx context.Context, code string) (*models.Role, error) {
	return s.findRole(ctx, `WHERE code = lower($1)`, code)
}

func (s *Postgres) findRole(ctx context.Context, where string, arg any) (*models.Role, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `
		SELECT id, code, description, permissions, created_at
		FROM roles `+where, arg)

	var (
		role  models.Role
		rawID string
		perms pq.StringArray
	)
	err := row.Scan(&rawID, &role.Code, &role.Description, &perms, &role.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select role: %w", err)
	}
	role.ID, err = id.ParseRoleID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse role id: %w", err)
	}
	role.Permissions = make([]models.Permission, len(perms))
	for i, p := range perms {
		role.Permissions[i] = models.Permission(p)
	}
	return &role, nil
}

func (s *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	q := tx.Resolve(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO users (id, identifier, password_hash, verified, created_at)
		VALUES ($1, lower($2), $3, $4, $5)`,
		user.ID.String(), user.Identifier, user.PasswordHash, user.Verified, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Postgres) FindUserByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `
		SELECT id, identifier, password_hash, verified, created_at
		FROM users
		WHERE id = $1`,
		userID.String(),
	)

	var (
		user  models.User
		rawID string
	)
	err := row.Scan(&rawID, &user.Identifier, &user.PasswordHash, &user.Verified, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	user.ID, err = id.ParseUserID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	return &user, nil
}

func (s *Postgres) CreateAdministrator(ctx context.Context, admin *models.Administrator) error {
	q := tx.Resolve(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO administrators (id, identifier, first_name, last_name, user_id, created_at)
		VALUES ($1, lower($2), $3, $4, $5, $6)`,
		admin.ID.String(), admin.Identifier, admin.FirstName, admin.LastName,
		admin.UserID.String(), admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert administrator: %w", err)
	}
	return nil
}

func (s *Postgres) FindAdministratorByID(ctx context.Context, adminID id.AdminID) (*models.Administrator, error) {
	return s.findAdministrator(ctx, `WHERE id = $1`, adminID.String())
}

func (s *Postgres) FindAdministratorByIdentifier(ctx context.Context, identifier string) (*models.Administrator, error) {
	return s.findAdministrator(ctx, `WHERE identifier = lower($1)`, identifier)
}

func (s *Postgres) findAdministrator(ctx context.Context, where string, arg any) (*models.Administrator, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `
		SELECT id, identifier, first_name, last_name, user_id, created_at
		FROM administrators `+where, arg)

	var (
		admin     models.Administrator
		rawID     string
		rawUserID string
	)
	err := row.Scan(&rawID, &admin.Identifier, &admin.FirstName, &admin.LastName, &rawUserID, &admin.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select administrator: %w", err)
	}
	admin.ID, err = id.ParseAdminID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse administrator id: %w", err)
	}
	admin.UserID, err = id.ParseUserID(rawUserID)
	if err != nil {
		return nil, fmt.Errorf("parse administrator user id: %w", err)
	}
	return &admin, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
