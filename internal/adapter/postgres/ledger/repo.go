// Package ledger implements the append-only stock ledger using PostgreSQL.
package ledger

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// DefaultPageSize is the number of rows Query fetches per round trip when
// the repository is built with a non-positive page size.
const DefaultPageSize = 200

const ledgerTable = "stock_ledger"

var ledgerColumns = []string{
	"seq", "id", "item_id", "item_kind", "activity_type", "quantity", "weight_kg", "actor_id", "notes", "created_at",
}

// Repo provides ledger persistence backed by PostgreSQL. Entries are never
// updated or deleted; a trigger on the table enforces this.
type Repo struct {
	db       postgres.Querier
	pageSize int
}

// New creates a new ledger repository.
func New(db postgres.Querier, pageSize int) *Repo {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Repo{db: db, pageSize: pageSize}
}

// Append inserts one entry and returns it with the server timestamp.
// A zero ID is replaced with a new one.
func (r *Repo) Append(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	var kind *string
	if e.ItemKind != nil {
		k := string(*e.ItemKind)
		kind = &k
	}

	sql, args, err := postgres.Builder().
		Insert(ledgerTable).
		Columns("id", "item_id", "item_kind", "activity_type", "quantity", "weight_kg", "actor_id", "notes").
		Values(e.ID, e.ItemID, kind, string(e.Activity), e.Quantity, e.WeightKg, e.ActorID, e.Notes).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("build append query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&e.Timestamp); err != nil {
		return domain.LedgerEntry{}, postgres.MapError(err, "append ledger entry")
	}
	return e, nil
}

// Query returns a lazy sequence over the entries matching f, newest first
// unless f.Ascending is set. Rows are fetched page by page using keyset
// pagination on (created_at, seq). Ranging over the sequence again re-runs
// the query. Iteration stops after the first error.
func (r *Repo) Query(ctx context.Context, f domain.LedgerFilter) iter.Seq2[domain.LedgerEntry, error] {
	return func(yield func(domain.LedgerEntry, error) bool) {
		var after *keyset
		for {
			page, err := r.page(ctx, f, after, r.pageSize)
			if err != nil {
				yield(domain.LedgerEntry{}, err)
				return
			}
			for _, row := range page {
				if !yield(row.toDomain(), nil) {
					return
				}
			}
			if len(page) < r.pageSize {
				return
			}
			last := page[len(page)-1]
			after = &keyset{CreatedAt: last.CreatedAt, Seq: last.Seq}
		}
	}
}

// List returns at most limit entries matching f.
func (r *Repo) List(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error) {
	rows, err := r.page(ctx, f, nil, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LedgerEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// CountByActivity returns the number of entries and summed magnitudes per
// activity type among entries matching f. Activity types with no entries
// are omitted.
func (r *Repo) CountByActivity(ctx context.Context, f domain.LedgerFilter) ([]domain.ActivityCount, error) {
	q := postgres.Builder().
		Select(
			"activity_type",
			"COUNT(*)",
			"COALESCE(SUM(quantity), 0)::bigint",
			"COALESCE(SUM(weight_kg), 0)",
		).
		From(ledgerTable).
		GroupBy("activity_type").
		OrderBy("activity_type")
	q = applyFilter(q, f)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "count ledger entries")
	}
	defer rows.Close()

	var out []domain.ActivityCount
	for rows.Next() {
		var (
			c        domain.ActivityCount
			activity string
		)
		if err := rows.Scan(&activity, &c.Count, &c.Quantity, &c.WeightKg); err != nil {
			return nil, postgres.MapError(err, "count ledger entries")
		}
		c.Activity = domain.ActivityType(activity)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "count ledger entries")
	}
	return out, nil
}

// SumByActivitySince returns the summed magnitudes of item-bound entries of
// the given activity and kind recorded at or after since.
func (r *Repo) SumByActivitySince(ctx context.Context, activity domain.ActivityType, kind domain.ItemKind, since time.Time) (domain.Balance, error) {
	sql, args, err := postgres.Builder().
		Select("COALESCE(SUM(quantity), 0)::bigint", "COALESCE(SUM(weight_kg), 0)").
		From(ledgerTable).
		Where(squirrel.Eq{"activity_type": string(activity), "item_kind": string(kind)}).
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return domain.Balance{}, fmt.Errorf("build sum query: %w", err)
	}

	var b domain.Balance
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&b.Quantity, &b.WeightKg); err != nil {
		return domain.Balance{}, postgres.MapError(err, "sum ledger entries")
	}
	return b, nil
}

const replayItemSQL = `
SELECT COALESCE(SUM(CASE WHEN activity_type = 'Add' THEN quantity ELSE -quantity END), 0)::bigint,
       COALESCE(SUM(CASE WHEN activity_type = 'Add' THEN weight_kg ELSE -weight_kg END), 0)
FROM stock_ledger
WHERE item_id = $1`

const replayAllSQL = `
SELECT item_id,
       MAX(item_kind),
       COALESCE(SUM(CASE WHEN activity_type = 'Add' THEN quantity ELSE -quantity END), 0)::bigint,
       COALESCE(SUM(CASE WHEN activity_type = 'Add' THEN weight_kg ELSE -weight_kg END), 0)
FROM stock_ledger
WHERE item_id IS NOT NULL
GROUP BY item_id
ORDER BY item_id`

// ReplayTotals returns the signed sum of every entry for itemID: the
// balance the ledger says the item should hold. Unknown items replay to zero.
func (r *Repo) ReplayTotals(ctx context.Context, itemID uuid.UUID) (domain.Balance, error) {
	var b domain.Balance
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, replayItemSQL, itemID).
		Scan(&b.Quantity, &b.WeightKg)
	if err != nil {
		return domain.Balance{}, postgres.MapError(err, "replay ledger "+itemID.String())
	}
	return b, nil
}

// ReplayAll returns replayed totals for every item that has ledger entries,
// including items that have since been removed.
func (r *Repo) ReplayAll(ctx context.Context) ([]domain.ItemBalance, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, replayAllSQL)
	if err != nil {
		return nil, postgres.MapError(err, "replay ledger")
	}
	defer rows.Close()

	var out []domain.ItemBalance
	for rows.Next() {
		var (
			ib   domain.ItemBalance
			kind string
		)
		if err := rows.Scan(&ib.ItemID, &kind, &ib.Balance.Quantity, &ib.Balance.WeightKg); err != nil {
			return nil, postgres.MapError(err, "replay ledger")
		}
		ib.Kind = domain.ItemKind(kind)
		out = append(out, ib)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "replay ledger")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type keyset struct {
	CreatedAt time.Time
	Seq       int64
}

func (r *Repo) page(ctx context.Context, f domain.LedgerFilter, after *keyset, limit int) ([]entryRow, error) {
	q := postgres.Builder().
		Select(ledgerColumns...).
		From(ledgerTable)
	q = applyFilter(q, f)

	if f.Ascending {
		q = q.OrderBy("created_at ASC", "seq ASC")
		if after != nil {
			q = q.Where(squirrel.Expr("(created_at, seq) > (?, ?)", after.CreatedAt, after.Seq))
		}
	} else {
		q = q.OrderBy("created_at DESC", "seq DESC")
		if after != nil {
			q = q.Where(squirrel.Expr("(created_at, seq) < (?, ?)", after.CreatedAt, after.Seq))
		}
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "query ledger")
	}
	return rows, nil
}

func applyFilter(q squirrel.SelectBuilder, f domain.LedgerFilter) squirrel.SelectBuilder {
	if f.ItemID != nil {
		q = q.Where(squirrel.Eq{"item_id": *f.ItemID})
	}
	if len(f.Activities) > 0 {
		acts := make([]string, len(f.Activities))
		for i, a := range f.Activities {
			acts[i] = string(a)
		}
		q = q.Where(squirrel.Eq{"activity_type": acts})
	}
	if f.ActorID != nil {
		q = q.Where(squirrel.Eq{"actor_id": *f.ActorID})
	}
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.Lt{"created_at": *f.To})
	}
	return q
}

type entryRow struct {
	Seq       int64           `db:"seq"`
	ID        uuid.UUID       `db:"id"`
	ItemID    *uuid.UUID      `db:"item_id"`
	ItemKind  *string         `db:"item_kind"`
	Activity  string          `db:"activity_type"`
	Quantity  int64           `db:"quantity"`
	WeightKg  decimal.Decimal `db:"weight_kg"`
	ActorID   uuid.UUID       `db:"actor_id"`
	Notes     *string         `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r entryRow) toDomain() domain.LedgerEntry {
	e := domain.LedgerEntry{
		ID:        r.ID,
		ItemID:    r.ItemID,
		Activity:  domain.ActivityType(r.Activity),
		Quantity:  r.Quantity,
		WeightKg:  r.WeightKg,
		ActorID:   r.ActorID,
		Notes:     r.Notes,
		Timestamp: r.CreatedAt,
	}
	if r.ItemKind != nil {
		k := domain.ItemKind(*r.ItemKind)
		e.ItemKind = &k
	}
	return e
}
