package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance is the on-hand amount of an inventory item. Deltas passed to the
// inventory repository use the same type with signed values.
type Balance struct {
	Quantity int64           `json:"quantity"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

func (b Balance) String() string {
	return fmt.Sprintf("%d pcs / %s kg", b.Quantity, b.WeightKg.StringFixed(2))
}

// Add returns the component-wise sum of b and o.
func (b Balance) Add(o Balance) Balance {
	return Balance{Quantity: b.Quantity + o.Quantity, WeightKg: b.WeightKg.Add(o.WeightKg)}
}

// Neg returns the balance with both components negated.
func (b Balance) Neg() Balance {
	return Balance{Quantity: -b.Quantity, WeightKg: b.WeightKg.Neg()}
}

// IsNegative reports whether either component is below zero.
func (b Balance) IsNegative() bool {
	return b.Quantity < 0 || b.WeightKg.IsNegative()
}

// IsZero reports whether both components are zero.
func (b Balance) IsZero() bool {
	return b.Quantity == 0 && b.WeightKg.IsZero()
}

// Equal compares balances numerically.
func (b Balance) Equal(o Balance) bool {
	return b.Quantity == o.Quantity && b.WeightKg.Equal(o.WeightKg)
}

// Covers reports whether b holds at least req in both components.
func (b Balance) Covers(req Balance) bool {
	return b.Quantity >= req.Quantity && b.WeightKg.GreaterThanOrEqual(req.WeightKg)
}

// ItemBalance is the balance snapshot of one item.
type ItemBalance struct {
	ItemID  uuid.UUID
	Kind    ItemKind
	Balance Balance
}

// InventoryItem is a raw material or finished good together with its live
// balance snapshot. Exactly one of RawMaterial and FinishedGood is set,
// matching Kind.
type InventoryItem struct {
	ID           uuid.UUID
	Kind         ItemKind
	Name         string
	Balance      Balance
	RawMaterial  *RawMaterialAttrs
	FinishedGood *FinishedGoodAttrs
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RawMaterialAttrs are the descriptive attributes of paper, wire, and gum stock.
type RawMaterialAttrs struct {
	Type          MaterialType
	Form          *MaterialForm
	GSM           *int
	BF            *int
	SizeWidthCm   decimal.NullDecimal
	RatePerKg     decimal.NullDecimal
	SupplierID    *uuid.UUID
	InvoiceNumber *string
}

// FinishedGoodAttrs are the descriptive attributes of a box product.
type FinishedGoodAttrs struct {
	CustomerID   *uuid.UUID
	LengthCm     decimal.NullDecimal
	WidthCm      decimal.NullDecimal
	HeightCm     decimal.NullDecimal
	NumberOfPly  *int
	UnitWeightKg decimal.Decimal
	RatePerPiece decimal.NullDecimal
}

// UnitWeight returns the weight of one piece for finished goods and zero
// for raw materials.
func (it *InventoryItem) UnitWeight() decimal.Decimal {
	if it.FinishedGood == nil {
		return decimal.Zero
	}
	return it.FinishedGood.UnitWeightKg
}

// IsLowStock reports whether the item has fallen to or below the given
// thresholds. Raw materials are judged by weight, finished goods by pieces.
func (it *InventoryItem) IsLowStock(minWeightKg decimal.Decimal, minPieces int64) bool {
	if it.Kind == ItemKindFinishedGood {
		return it.Balance.Quantity <= minPieces
	}
	return it.Balance.WeightKg.LessThanOrEqual(minWeightKg)
}
