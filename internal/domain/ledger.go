package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is an immutable record of one stock movement. Quantity and
// WeightKg are magnitudes; the direction follows from Activity.
type LedgerEntry struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    *uuid.UUID      `json:"item_id"`
	ItemKind  *ItemKind       `json:"item_kind"`
	Activity  ActivityType    `json:"activity"`
	Quantity  int64           `json:"quantity"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	ActorID   uuid.UUID       `json:"actor_id"`
	Notes     *string         `json:"notes"`
	Timestamp time.Time       `json:"timestamp"`
}

// Delta returns the signed balance change this entry represents.
func (e LedgerEntry) Delta() Balance {
	b := Balance{Quantity: e.Quantity, WeightKg: e.WeightKg}
	if e.Activity.IsDepleting() {
		return b.Neg()
	}
	return b
}

// Replay folds entries into the balance they produce from zero.
// Entries without an item are ignored.
func Replay(entries []LedgerEntry) Balance {
	total := Balance{WeightKg: decimal.Zero}
	for _, e := range entries {
		if e.ItemID == nil {
			continue
		}
		total = total.Add(e.Delta())
	}
	return total
}

// LedgerFilter selects ledger entries. Zero values mean "no constraint".
type LedgerFilter struct {
	ItemID     *uuid.UUID
	Activities []ActivityType
	ActorID    *uuid.UUID
	From       *time.Time // inclusive
	To         *time.Time // exclusive
	Ascending  bool
}

// ActivityCount is the number of entries of one activity type.
type ActivityCount struct {
	Activity ActivityType
	Count    int64
	Quantity int64
	WeightKg decimal.Decimal
}
