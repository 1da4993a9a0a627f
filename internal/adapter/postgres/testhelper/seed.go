package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActor inserts a user row with the given role and raw permissions JSON.
func SeedActor(t *testing.T, pool *pgxpool.Pool, role domain.Role, permissions string) domain.Actor {
	t.Helper()

	if permissions == "" {
		permissions = "{}"
	}
	suffix := uniqueSuffix()
	actor := domain.Actor{
		ID:        uuid.New(),
		Email:     "operator-" + suffix + "@example.com",
		FullName:  "Operator " + suffix,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, full_name, role, permissions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $6)`,
		actor.ID, actor.Email, actor.FullName, string(actor.Role), permissions, actor.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActor: %v", err)
	}

	perms, err := domain.ParsePermissionMatrix([]byte(permissions))
	if err != nil {
		t.Fatalf("testhelper: SeedActor permissions: %v", err)
	}
	actor.Permissions = perms
	return actor
}

// SeedRawMaterial inserts a paper raw material with the given weight.
// The ledger is not touched.
func SeedRawMaterial(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, weightKg string) domain.InventoryItem {
	t.Helper()

	item := domain.InventoryItem{
		ID:      uuid.New(),
		Kind:    domain.ItemKindRawMaterial,
		Name:    "Kraft Paper " + uniqueSuffix(),
		Balance: domain.Balance{Quantity: 1, WeightKg: decimal.RequireFromString(weightKg)},
		RawMaterial: &domain.RawMaterialAttrs{
			Type:      domain.MaterialPaper,
			RatePerKg: decimal.NewNullDecimal(decimal.RequireFromString("42.50")),
		},
		CreatedBy: createdBy,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inventory_items (id, kind, name, quantity, weight_kg, material_type, rate_per_kg, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, string(item.Kind), item.Name, item.Balance.Quantity, item.Balance.WeightKg,
		string(item.RawMaterial.Type), item.RawMaterial.RatePerKg, createdBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRawMaterial: %v", err)
	}
	return item
}

// SeedCustomer inserts a customer with a unique name.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Party {
	t.Helper()

	p := domain.Party{ID: uuid.New(), Kind: domain.PartyCustomer, Name: "Customer " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO customers (id, name) VALUES ($1, $2) RETURNING created_at, updated_at`,
		p.ID, p.Name,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return p
}

// SeedFinishedGood inserts a box product with the given piece count and unit
// weight, made for a freshly seeded customer.
func SeedFinishedGood(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, pieces int64, unitWeightKg string) domain.InventoryItem {
	t.Helper()

	unit := decimal.RequireFromString(unitWeightKg)
	customer := SeedCustomer(t, pool).ID
	item := domain.InventoryItem{
		ID:      uuid.New(),
		Kind:    domain.ItemKindFinishedGood,
		Name:    "RSC Box " + uniqueSuffix(),
		Balance: domain.Balance{Quantity: pieces, WeightKg: unit.Mul(decimal.NewFromInt(pieces))},
		FinishedGood: &domain.FinishedGoodAttrs{
			CustomerID:   &customer,
			UnitWeightKg: unit,
		},
		CreatedBy: createdBy,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inventory_items (id, kind, name, quantity, weight_kg, customer_id, unit_weight_kg, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, string(item.Kind), item.Name, item.Balance.Quantity, item.Balance.WeightKg,
		customer, unit, createdBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFinishedGood: %v", err)
	}
	return item
}
