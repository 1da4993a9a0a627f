package stock

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// History returns ledger entries matching f, newest first by default.
// limit is clamped to (0, maxHistory].
func (s *Service) History(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error) {
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: domain.ModuleStockLogs, Action: domain.ActionView}); err != nil {
		return nil, err
	}

	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return nil, domain.NewValidationError("to", "must be after from")
	}
	for _, a := range f.Activities {
		if !a.IsValid() {
			return nil, domain.NewValidationError("activity", fmt.Sprintf("unknown activity %q", a))
		}
	}

	if limit <= 0 || limit > s.maxHistory {
		limit = s.maxHistory
	}

	entries, err := s.ledger.List(ctx, f, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	return entries, nil
}

// GetItem returns one item with its balance. Anonymous callers are rejected
// before the item is looked up.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	actor, err := s.gate.CurrentActor(ctx)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if err := s.gate.Permit(ctx, actor, domain.Permission{Module: item.Kind.Module(), Action: domain.ActionView}); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns the items of one kind.
func (s *Service) ListItems(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be raw_material or finished_good")
	}
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: kind.Module(), Action: domain.ActionView}); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
