// Package actor implements the actor (user account) repository using PostgreSQL.
// Accounts are provisioned by the identity provider; this package only reads them.
package actor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// Repo provides actor lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new actor repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, email, full_name, role, permissions, created_at
FROM users
WHERE id = $1`

// GetByID loads an actor and parses its permission matrix. A stored matrix
// naming unknown modules or actions is rejected with a ValidationError.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	var (
		a     domain.Actor
		role  string
		perms []byte
		at    time.Time
	)
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getByIDSQL, id).
		Scan(&a.ID, &a.Email, &a.FullName, &role, &perms, &at)
	if err != nil {
		return nil, postgres.MapError(err, "actor "+id.String())
	}

	a.Role = domain.Role(role)
	a.CreatedAt = at

	matrix, err := domain.ParsePermissionMatrix(perms)
	if err != nil {
		return nil, fmt.Errorf("actor %s: %w", id, err)
	}
	a.Permissions = matrix

	return &a, nil
}
