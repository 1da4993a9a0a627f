// Package party implements supplier and customer persistence using
// PostgreSQL. The two tables have the same columns; the kind picks the table.
package party

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

var partyColumns = []string{
	"id", "name", "email", "contact_person", "address", "created_at", "updated_at",
}

// Repo provides party persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new party repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func table(kind domain.PartyKind) (string, error) {
	switch kind {
	case domain.PartySupplier:
		return "suppliers", nil
	case domain.PartyCustomer:
		return "customers", nil
	}
	return "", domain.NewValidationError("kind", "must be supplier or customer")
}

// Create inserts p into the table for p.Kind. A duplicate name gives
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Party) (domain.Party, error) {
	tbl, err := table(p.Kind)
	if err != nil {
		return domain.Party{}, err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(tbl).
		Columns("id", "name", "email", "contact_person", "address").
		Values(p.ID, p.Name, p.Email, p.ContactPerson, p.Address).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Party{}, fmt.Errorf("build create %s query: %w", p.Kind, err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Party{}, postgres.MapError(err, fmt.Sprintf("create %s %q", p.Kind, p.Name))
	}
	return p, nil
}

// List returns every party of kind ordered by name.
func (r *Repo) List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	return r.list(ctx, kind, nil)
}

// GetByIDs returns the parties of kind that exist among ids.
func (r *Repo) GetByIDs(ctx context.Context, kind domain.PartyKind, ids []uuid.UUID) ([]domain.Party, error) {
	if len(ids) == 0 {
		return []domain.Party{}, nil
	}
	return r.list(ctx, kind, squirrel.Eq{"id": ids})
}

func (r *Repo) list(ctx context.Context, kind domain.PartyKind, where squirrel.Sqlizer) ([]domain.Party, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Select(partyColumns...).
		From(tbl).
		OrderBy("name ASC")
	if where != nil {
		q = q.Where(where)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", kind, err)
	}

	var rows []partyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list "+string(kind)+"s")
	}

	out := make([]domain.Party, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain(kind)
	}
	return out, nil
}

type partyRow struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Email         *string   `db:"email"`
	ContactPerson *string   `db:"contact_person"`
	Address       *string   `db:"address"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r partyRow) toDomain(kind domain.PartyKind) domain.Party {
	return domain.Party{
		ID:            r.ID,
		Kind:          kind,
		Name:          r.Name,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		Address:       r.Address,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
