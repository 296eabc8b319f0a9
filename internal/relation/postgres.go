package relation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"sokoni/pkg/platform/tx"
)

// joinTables maps (kind, relation) to the backing join table. Column order is
// always (parent_id, child_id).
var joinTables = map[Kind]map[Name]string{
	KindTenant: {
		StockLocations: "tenant_stock_locations",
		PaymentMethods: "tenant_payment_methods",
		Roles:          "tenant_roles",
	},
	KindUser: {
		UserRoles: "user_roles",
	},
}

// Postgres persists join relations in PostgreSQL. All statements resolve the
// ambient transaction from the context so provisioning writes and the
// verification reads that follow them share one connection.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func joinTable(parent Ref, rel Name) (string, error) {
	table, ok := joinTables[parent.Kind][rel]
	if !ok {
		return "", fmt.Errorf("unknown relation %s.%s", parent.Kind, rel)
	}
	return table, nil
}

func (s *Postgres) Assign(ctx context.Context, parent Ref, rel Name, childID uuid.UUID) error {
	table, err := joinTable(parent, rel)
	if err != nil {
		return err
	}
	q := tx.Resolve(ctx, s.db)
	query := fmt.Sprintf(`
		INSERT INTO %s (parent_id, child_id)
		VALUES ($1, $2)
		ON CONFLICT (parent_id, child_id) DO NOTHING
	`, table)
	if _, err := q.ExecContext(ctx, query, parent.ID, childID); err != nil {
		return fmt.Errorf("assign %s.%s: %w", parent.Kind, rel, err)
	}
	return nil
}

func (s *Postgres) Members(ctx context.Context, parent Ref, rel Name) ([]uuid.UUID, error) {
	table, err := joinTable(parent, rel)
	if err != nil {
		return nil, err
	}
	q := tx.Resolve(ctx, s.db)
	query := fmt.Sprintf(`SELECT child_id FROM %s WHERE parent_id = $1`, table)
	rows, err := q.QueryContext(ctx, query, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("load %s.%s members: %w", parent.Kind, rel, err)
	}
	defer rows.Close()

	var members []uuid.UUID
	for rows.Next() {
		var childID uuid.UUID
		if err := rows.Scan(&childID); err != nil {
			return nil, fmt.Errorf("scan %s.%s member: %w", parent.Kind, rel, err)
		}
		members = append(members, childID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s.%s members: %w", parent.Kind, rel, err)
	}
	return members, nil
}
