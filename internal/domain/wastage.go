package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WastageSale is a sale of scrap material. It is not tied to an inventory item.
type WastageSale struct {
	ID              uuid.UUID
	Date            time.Time
	ItemDescription string
	Quantity        int64
	WeightKg        decimal.Decimal
	SaleAmount      decimal.Decimal
	Notes           *string
	ActorID         uuid.UUID
	CreatedAt       time.Time
}

// WastageFilter bounds wastage sales by sale date.
type WastageFilter struct {
	From *time.Time // inclusive
	To   *time.Time // inclusive
}
