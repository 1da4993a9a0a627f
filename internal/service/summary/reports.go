package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

const (
	keyFinishedGoods = "finished_goods"
	keyRawMaterials  = "raw_materials"
)

// RawMaterialsReport is raw stock grouped by grade with the total value of
// all raw stock.
type RawMaterialsReport struct {
	Groups     []Group[RawMaterialKey] `json:"groups"`
	ItemCount  int                     `json:"item_count"`
	Total      Measure                 `json:"total"`
	TotalValue decimal.Decimal         `json:"total_value"`
}

// WastageReport totals wastage sales in a date range.
type WastageReport struct {
	Count         int             `json:"count"`
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageRate   decimal.Decimal `json:"average_rate"`
}

// FinishedGoodsSummary groups finished goods by box name and customer and
// labels each group with the customer's name.
func (s *Service) FinishedGoodsSummary(ctx context.Context) ([]Group[FinishedGoodKey], error) {
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleFinishedGoods, Action: domain.ActionView}); err != nil {
		return nil, err
	}

	return cached(ctx, s, keyFinishedGoods, func(ctx context.Context) ([]Group[FinishedGoodKey], error) {
		items, err := s.items.List(ctx, domain.ItemKindFinishedGood)
		if err != nil {
			return nil, fmt.Errorf("list finished goods: %w", err)
		}
		customers, err := s.parties.List(ctx, domain.PartyCustomer)
		if err != nil {
			return nil, fmt.Errorf("list customers: %w", err)
		}

		names := make(map[uuid.UUID]string, len(customers))
		for _, c := range customers {
			names[c.ID] = c.Name
		}
		groups := SummarizeByKey(items, finishedGoodKey, finishedGoodMeasure)
		nameCustomers(groups, names)
		return groups, nil
	})
}

// RawMaterialsSummary groups raw materials by type, GSM and BF.
func (s *Service) RawMaterialsSummary(ctx context.Context) (*RawMaterialsReport, error) {
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleRawMaterials, Action: domain.ActionView}); err != nil {
		return nil, err
	}

	return cached(ctx, s, keyRawMaterials, func(ctx context.Context) (*RawMaterialsReport, error) {
		items, err := s.items.List(ctx, domain.ItemKindRawMaterial)
		if err != nil {
			return nil, fmt.Errorf("list raw materials: %w", err)
		}
		groups := SummarizeByKey(items, rawMaterialKey, rawMaterialMeasure)
		sum := total(groups)
		return &RawMaterialsReport{
			Groups:     groups,
			ItemCount:  len(items),
			Total:      sum,
			TotalValue: sum.Amount,
		}, nil
	})
}

// WastageSummary totals wastage sales in f. AverageRate is amount per kg,
// zero when nothing was sold.
func (s *Service) WastageSummary(ctx context.Context, f domain.WastageFilter) (WastageReport, error) {
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleWastageSales, Action: domain.ActionView}); err != nil {
		return WastageReport{}, err
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return WastageReport{}, domain.NewValidationError("to", "must not be before from")
	}

	sales, err := s.wastage.List(ctx, f)
	if err != nil {
		return WastageReport{}, fmt.Errorf("list wastage sales: %w", err)
	}

	r := WastageReport{
		Count:         len(sales),
		TotalWeightKg: decimal.Zero,
		TotalAmount:   decimal.Zero,
		AverageRate:   decimal.Zero,
	}
	for _, sale := range sales {
		r.TotalWeightKg = r.TotalWeightKg.Add(sale.WeightKg)
		r.TotalAmount = r.TotalAmount.Add(sale.SaleAmount)
	}
	if r.TotalWeightKg.IsPositive() {
		r.AverageRate = r.TotalAmount.DivRound(r.TotalWeightKg, 2)
	}
	return r, nil
}

// ActivityCounts returns the number of ledger entries per activity type.
func (s *Service) ActivityCounts(ctx context.Context, f domain.LedgerFilter) ([]domain.ActivityCount, error) {
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleStockLogs, Action: domain.ActionView}); err != nil {
		return nil, err
	}

	counts, err := s.ledger.CountByActivity(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count by activity: %w", err)
	}
	return counts, nil
}
