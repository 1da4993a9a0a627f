package stock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// WastageSaleResult is a recorded sale and its ledger entry.
type WastageSaleResult struct {
	Sale  domain.WastageSale
	Entry domain.LedgerEntry
}

// RecordWastageSale stores a scrap sale and a standalone Wastage ledger
// entry in one transaction. No item balance changes.
func (s *Service) RecordWastageSale(ctx context.Context, input WastageSaleInput) (*WastageSaleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleWastageSales, Action: domain.ActionManage})
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	desc := strings.TrimSpace(input.ItemDescription)

	var result WastageSaleResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sale, createErr := s.wastage.Create(txCtx, domain.WastageSale{
			Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			ItemDescription: desc,
			Quantity:        input.Quantity,
			WeightKg:        input.WeightKg,
			SaleAmount:      input.SaleAmount,
			Notes:           trimOrNil(input.Notes),
			ActorID:         actor.ID,
		})
		if createErr != nil {
			return fmt.Errorf("create wastage sale: %w", createErr)
		}
		result.Sale = sale

		entry, appendErr := s.ledger.Append(txCtx, domain.LedgerEntry{
			Activity: domain.ActivityWastage,
			Quantity: input.Quantity,
			WeightKg: input.WeightKg,
			ActorID:  actor.ID,
			Notes:    ptr("Wastage sale: " + desc),
		})
		if appendErr != nil {
			return fmt.Errorf("append ledger entry: %w", appendErr)
		}
		result.Entry = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx)

	s.log.InfoContext(ctx, "wastage sale recorded",
		slog.String("actor_id", actor.ID.String()),
		slog.String("sale_id", result.Sale.ID.String()),
		slog.String("weight_kg", input.WeightKg.StringFixed(2)),
		slog.String("amount", input.SaleAmount.StringFixed(2)),
	)

	return &result, nil
}

// ListWastageSales returns sales within f, newest first.
func (s *Service) ListWastageSales(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error) {
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleWastageSales, Action: domain.ActionView}); err != nil {
		return nil, err
	}

	sales, err := s.wastage.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list wastage sales: %w", err)
	}
	return sales, nil
}
