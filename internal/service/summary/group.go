package summary

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// Measure is the summable part of a row.
type Measure struct {
	Quantity int64           `json:"quantity"`
	WeightKg decimal.Decimal `json:"weight_kg"`
	Amount   decimal.Decimal `json:"amount"`
}

// Add returns the component-wise sum.
func (m Measure) Add(o Measure) Measure {
	return Measure{
		Quantity: m.Quantity + o.Quantity,
		WeightKg: m.WeightKg.Add(o.WeightKg),
		Amount:   m.Amount.Add(o.Amount),
	}
}

// Group is the total of all rows that share Key.
type Group[K comparable] struct {
	Key    K       `json:"key"`
	Count  int     `json:"count"`
	Totals Measure `json:"totals"`
}

// SummarizeByKey groups rows by keyFn and sums measureFn over each group.
// Groups are returned in the order their key first appears in rows.
func SummarizeByKey[T any, K comparable](rows []T, keyFn func(T) K, measureFn func(T) Measure) []Group[K] {
	index := make(map[K]int, len(rows))
	groups := make([]Group[K], 0)

	for _, row := range rows {
		k := keyFn(row)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K]{Key: k, Totals: Measure{WeightKg: decimal.Zero, Amount: decimal.Zero}})
		}
		groups[i].Count++
		groups[i].Totals = groups[i].Totals.Add(measureFn(row))
	}
	return groups
}

// FinishedGoodKey groups boxes of the same name made for the same customer.
// CustomerID is uuid.Nil for stock boxes. CustomerName is filled after
// grouping and is domain.UnknownCustomer when the customer is not on file.
type FinishedGoodKey struct {
	BoxName      string    `json:"box_name"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
}

// RawMaterialKey groups raw materials by grade. GSM and BF are zero when
// the material does not carry them.
type RawMaterialKey struct {
	Type domain.MaterialType `json:"type"`
	GSM  int                 `json:"gsm"`
	BF   int                 `json:"bf"`
}

func finishedGoodKey(it domain.InventoryItem) FinishedGoodKey {
	k := FinishedGoodKey{BoxName: it.Name}
	if it.FinishedGood != nil && it.FinishedGood.CustomerID != nil {
		k.CustomerID = *it.FinishedGood.CustomerID
	}
	return k
}

// nameCustomers sets CustomerName on every group from names.
func nameCustomers(groups []Group[FinishedGoodKey], names map[uuid.UUID]string) {
	for i := range groups {
		name, ok := names[groups[i].Key.CustomerID]
		if !ok {
			name = domain.UnknownCustomer
		}
		groups[i].Key.CustomerName = name
	}
}

func rawMaterialKey(it domain.InventoryItem) RawMaterialKey {
	var k RawMaterialKey
	if rm := it.RawMaterial; rm != nil {
		k.Type = rm.Type
		if rm.GSM != nil {
			k.GSM = *rm.GSM
		}
		if rm.BF != nil {
			k.BF = *rm.BF
		}
	}
	return k
}

// finishedGoodMeasure values boxes by piece: weight is pieces times the
// weight of one box and amount is pieces times the rate per piece.
func finishedGoodMeasure(it domain.InventoryItem) Measure {
	pieces := decimal.NewFromInt(it.Balance.Quantity)
	m := Measure{
		Quantity: it.Balance.Quantity,
		WeightKg: pieces.Mul(it.UnitWeight()).Round(2),
		Amount:   decimal.Zero,
	}
	if fg := it.FinishedGood; fg != nil && fg.RatePerPiece.Valid {
		m.Amount = pieces.Mul(fg.RatePerPiece.Decimal).Round(2)
	}
	return m
}

// rawMaterialMeasure values raw stock by weight times the rate per kg.
func rawMaterialMeasure(it domain.InventoryItem) Measure {
	m := Measure{
		Quantity: it.Balance.Quantity,
		WeightKg: it.Balance.WeightKg,
		Amount:   decimal.Zero,
	}
	if rm := it.RawMaterial; rm != nil && rm.RatePerKg.Valid {
		m.Amount = it.Balance.WeightKg.Mul(rm.RatePerKg.Decimal).Round(2)
	}
	return m
}

func total[K comparable](groups []Group[K]) Measure {
	sum := Measure{WeightKg: decimal.Zero, Amount: decimal.Zero}
	for _, g := range groups {
		sum = sum.Add(g.Totals)
	}
	return sum
}
