package stock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// RemoveItem deletes an item and appends a Removed entry carrying the
// balance it held, so replaying the ledger for the item still ends at zero.
func (s *Service) RemoveItem(ctx context.Context, input RemoveItemInput) (*domain.LedgerEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.gate.CurrentActor(ctx)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if err := s.gate.Permit(ctx, actor, domain.PermissionFor(item.Kind, domain.ActivityRemoved)); err != nil {
		return nil, err
	}

	var entry domain.LedgerEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, delErr := s.items.Delete(txCtx, item.ID)
		if delErr != nil {
			return fmt.Errorf("delete item: %w", delErr)
		}

		notes := trimOrNil(input.Notes)
		if notes == nil {
			notes = ptr("Removed " + item.Name)
		}

		var appendErr error
		entry, appendErr = s.ledger.Append(txCtx, domain.LedgerEntry{
			ItemID:   &item.ID,
			ItemKind: &item.Kind,
			Activity: domain.ActivityRemoved,
			Quantity: removed.Quantity,
			WeightKg: removed.WeightKg,
			ActorID:  actor.ID,
			Notes:    notes,
		})
		if appendErr != nil {
			return fmt.Errorf("append ledger entry: %w", appendErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx)

	s.log.InfoContext(ctx, "inventory item removed",
		slog.String("actor_id", actor.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Int64("quantity", entry.Quantity),
		slog.String("weight_kg", entry.WeightKg.StringFixed(2)),
	)

	return &entry, nil
}
