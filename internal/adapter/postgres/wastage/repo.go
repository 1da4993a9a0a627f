// Package wastage implements the wastage sale repository using PostgreSQL.
package wastage

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

const saleTable = "wastage_sales"

var saleColumns = []string{
	"id", "sale_date", "item_description", "quantity", "weight_kg", "sale_amount", "notes", "actor_id", "created_at",
}

// Repo provides wastage sale persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new wastage sale repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a sale and returns it with its creation timestamp.
func (r *Repo) Create(ctx context.Context, s domain.WastageSale) (domain.WastageSale, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(saleTable).
		Columns("id", "sale_date", "item_description", "quantity", "weight_kg", "sale_amount", "notes", "actor_id").
		Values(s.ID, s.Date, s.ItemDescription, s.Quantity, s.WeightKg, s.SaleAmount, s.Notes, s.ActorID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.WastageSale{}, fmt.Errorf("build create sale query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&s.CreatedAt); err != nil {
		return domain.WastageSale{}, postgres.MapError(err, "create wastage sale")
	}
	return s, nil
}

// List returns sales within f, newest sale date first.
func (r *Repo) List(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error) {
	q := postgres.Builder().
		Select(saleColumns...).
		From(saleTable).
		OrderBy("sale_date DESC", "created_at DESC")
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"sale_date": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.LtOrEq{"sale_date": *f.To})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sales query: %w", err)
	}

	var rows []saleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list wastage sales")
	}

	out := make([]domain.WastageSale, len(rows))
	for i, row := range rows {
		out[i] = domain.WastageSale(row)
	}
	return out, nil
}

type saleRow struct {
	ID              uuid.UUID       `db:"id"`
	Date            time.Time       `db:"sale_date"`
	ItemDescription string          `db:"item_description"`
	Quantity        int64           `db:"quantity"`
	WeightKg        decimal.Decimal `db:"weight_kg"`
	SaleAmount      decimal.Decimal `db:"sale_amount"`
	Notes           *string         `db:"notes"`
	ActorID         uuid.UUID       `db:"actor_id"`
	CreatedAt       time.Time       `db:"created_at"`
}
