// Package inventory implements the inventory item repository using PostgreSQL.
// It is the only code that writes balance columns; every balance change goes
// through AdjustBalance or Delete, which are single conditional statements.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// Repo provides inventory item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inventory repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const itemTable = "inventory_items"

var itemColumns = []string{
	"id", "kind", "name", "quantity", "weight_kg",
	"material_type", "material_form", "gsm", "bf", "size_width_cm", "rate_per_kg", "supplier_id", "invoice_number",
	"customer_id", "length_cm", "width_cm", "height_cm", "number_of_ply", "unit_weight_kg", "rate_per_piece",
	"created_by", "created_at", "updated_at",
}

const adjustBalanceSQL = `
UPDATE inventory_items
SET quantity   = quantity + $2,
    weight_kg  = weight_kg + $3,
    updated_at = now()
WHERE id = $1
  AND quantity + $2 >= 0
  AND weight_kg + $3 >= 0
RETURNING quantity, weight_kg`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM inventory_items WHERE id = $1)`

const getBalanceSQL = `SELECT quantity, weight_kg FROM inventory_items WHERE id = $1`

const listBalancesSQL = `SELECT id, kind, quantity, weight_kg FROM inventory_items ORDER BY id`

const deleteSQL = `DELETE FROM inventory_items WHERE id = $1 RETURNING quantity, weight_kg`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one item. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	sql, args, err := postgres.Builder().
		Select(itemColumns...).
		From(itemTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inventory item "+id.String())
	}

	item := row.toDomain()
	return &item, nil
}

// GetByIDs returns the items that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.InventoryItem, error) {
	if len(ids) == 0 {
		return []domain.InventoryItem{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(itemColumns...).
		From(itemTable).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get items query: %w", err)
	}

	return r.selectItems(ctx, "get inventory items by ids", sql, args)
}

// List returns items of the given kind (all kinds when kind is empty),
// ordered by name.
func (r *Repo) List(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error) {
	q := postgres.Builder().
		Select(itemColumns...).
		From(itemTable).
		OrderBy("name ASC", "id ASC")
	if kind != "" {
		q = q.Where(squirrel.Eq{"kind": string(kind)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query: %w", err)
	}

	return r.selectItems(ctx, "list inventory items", sql, args)
}

// GetBalance returns the current balance snapshot of an item.
func (r *Repo) GetBalance(ctx context.Context, id uuid.UUID) (domain.Balance, error) {
	var b domain.Balance
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getBalanceSQL, id).
		Scan(&b.Quantity, &b.WeightKg)
	if err != nil {
		return domain.Balance{}, postgres.MapError(err, "inventory item "+id.String())
	}
	return b, nil
}

// ListBalances returns the balance snapshot of every item.
func (r *Repo) ListBalances(ctx context.Context) ([]domain.ItemBalance, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listBalancesSQL)
	if err != nil {
		return nil, postgres.MapError(err, "list balances")
	}
	defer rows.Close()

	var out []domain.ItemBalance
	for rows.Next() {
		var (
			ib   domain.ItemBalance
			kind string
		)
		if err := rows.Scan(&ib.ItemID, &kind, &ib.Balance.Quantity, &ib.Balance.WeightKg); err != nil {
			return nil, postgres.MapError(err, "list balances")
		}
		ib.Kind = domain.ItemKind(kind)
		out = append(out, ib)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list balances")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item with its opening balance. An existing id gives
// domain.ErrAlreadyExists without aborting the surrounding transaction, so
// the caller can fall back to adjusting that item. A supplier or customer
// that is not on file gives a validation error for that field.
func (r *Repo) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	row := fromDomain(item)

	sql, args, err := postgres.Builder().
		Insert(itemTable).
		Columns(
			"id", "kind", "name", "quantity", "weight_kg",
			"material_type", "material_form", "gsm", "bf", "size_width_cm", "rate_per_kg", "supplier_id", "invoice_number",
			"customer_id", "length_cm", "width_cm", "height_cm", "number_of_ply", "unit_weight_kg", "rate_per_piece",
			"created_by",
		).
		Values(
			row.ID, row.Kind, row.Name, row.Quantity, row.WeightKg,
			row.MaterialType, row.MaterialForm, row.GSM, row.BF, row.SizeWidthCm, row.RatePerKg, row.SupplierID, row.InvoiceNumber,
			row.CustomerID, row.LengthCm, row.WidthCm, row.HeightCm, row.NumberOfPly, row.UnitWeightKg, row.RatePerPiece,
			row.CreatedBy,
		).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create item query: %w", err)
	}

	var created itemRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("create inventory item %s: %w", item.ID, domain.ErrAlreadyExists)
	case err != nil:
		if ve := unknownReference(err); ve != nil {
			return nil, ve
		}
		return nil, postgres.MapError(err, "create inventory item "+item.ID.String())
	}

	out := created.toDomain()
	return &out, nil
}

// AdjustBalance applies signed deltas in one conditional UPDATE and returns
// the new balance. If the result would be negative nothing is written and
// domain.ErrNegativeBalance is returned; an unknown id gives domain.ErrNotFound.
func (r *Repo) AdjustBalance(ctx context.Context, id uuid.UUID, delta domain.Balance) (domain.Balance, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var b domain.Balance
	err := q.QueryRow(ctx, adjustBalanceSQL, id, delta.Quantity, delta.WeightKg).Scan(&b.Quantity, &b.WeightKg)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Balance{}, postgres.MapError(err, "adjust balance "+id.String())
	}

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return domain.Balance{}, postgres.MapError(err, "adjust balance "+id.String())
	}
	if !exists {
		return domain.Balance{}, fmt.Errorf("inventory item %s: %w", id, domain.ErrNotFound)
	}
	return domain.Balance{}, fmt.Errorf("adjust balance %s: %w", id, domain.ErrNegativeBalance)
}

// Delete removes the item row and returns the balance it held at deletion.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (domain.Balance, error) {
	var b domain.Balance
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, deleteSQL, id).
		Scan(&b.Quantity, &b.WeightKg)
	if err != nil {
		return domain.Balance{}, postgres.MapError(err, "delete inventory item "+id.String())
	}
	return b, nil
}

// referenceFields maps foreign keys on party columns to request fields.
var referenceFields = map[string]string{
	"inventory_items_supplier_fk": "supplier_id",
	"inventory_items_customer_fk": "customer_id",
}

func unknownReference(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return nil
	}
	field, ok := referenceFields[pgErr.ConstraintName]
	if !ok {
		return nil
	}
	return domain.NewValidationError(field, "not on file")
}

func (r *Repo) selectItems(ctx context.Context, op, sql string, args []any) ([]domain.InventoryItem, error) {
	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}

	items := make([]domain.InventoryItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}
