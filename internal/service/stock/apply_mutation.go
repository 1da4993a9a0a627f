package stock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// MutationResult is the item with its new balance and the ledger entry
// that records the change.
type MutationResult struct {
	Item  domain.InventoryItem
	Entry domain.LedgerEntry
}

// ApplyMutation changes an item's balance and appends one ledger entry in a
// single transaction. Depleting activities that exceed the balance fail with
// *domain.InsufficientStockError and write nothing.
func (s *Service) ApplyMutation(ctx context.Context, input MutationInput) (*MutationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.gate.CurrentActor(ctx)
	if err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, input)
	if err != nil {
		return nil, err
	}

	var itemKind domain.ItemKind
	if item != nil {
		itemKind = item.Kind
	} else {
		itemKind = input.NewItem.Kind
	}

	if err := s.gate.Permit(ctx, actor, domain.PermissionFor(itemKind, input.Activity)); err != nil {
		return nil, err
	}

	amount := mutationAmount(input, item, itemKind)

	notes := trimOrNil(input.Notes)
	if input.Activity == domain.ActivityConvert && notes == nil {
		if target := trimOrNil(input.ConvertTarget); target != nil {
			notes = ptr("Converted to " + *target)
		}
	}

	var result MutationResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if item == nil {
			created, applied, createErr := s.createOrAdd(txCtx, input, amount, actor.ID)
			if createErr != nil {
				return createErr
			}
			result.Item = *created
			amount = applied
		} else {
			after, adjErr := s.adjust(txCtx, item, input.Activity, amount)
			if adjErr != nil {
				return adjErr
			}
			result.Item = *item
			result.Item.Balance = after
		}

		entry, appendErr := s.ledger.Append(txCtx, domain.LedgerEntry{
			ItemID:   &result.Item.ID,
			ItemKind: &result.Item.Kind,
			Activity: input.Activity,
			Quantity: amount.Quantity,
			WeightKg: amount.WeightKg,
			ActorID:  actor.ID,
			Notes:    notes,
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

	s.log.InfoContext(ctx, "stock mutation applied",
		slog.String("actor_id", actor.ID.String()),
		slog.String("item_id", result.Item.ID.String()),
		slog.String("activity", input.Activity.String()),
		slog.Int64("quantity", amount.Quantity),
		slog.String("weight_kg", amount.WeightKg.StringFixed(2)),
		slog.String("balance", result.Item.Balance.String()),
	)

	return &result, nil
}

// resolveItem loads the target item. It returns nil without error when an
// Add should create the item described by input.NewItem.
func (s *Service) resolveItem(ctx context.Context, input MutationInput) (*domain.InventoryItem, error) {
	if input.ItemID == uuid.Nil {
		return nil, nil
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err == nil {
		return item, nil
	}
	if errors.Is(err, domain.ErrNotFound) && input.NewItem != nil {
		return nil, nil
	}
	return nil, fmt.Errorf("get item: %w", err)
}

// createOrAdd creates the item described by input.NewItem. When a
// concurrent request created the same id first, the Add is applied to that
// item instead, provided it is of the same kind.
func (s *Service) createOrAdd(ctx context.Context, input MutationInput, amount domain.Balance, actorID uuid.UUID) (*domain.InventoryItem, domain.Balance, error) {
	created, err := s.items.Create(ctx, newItem(input, amount, actorID))
	if err == nil {
		return created, amount, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) || input.ItemID == uuid.Nil {
		return nil, domain.Balance{}, fmt.Errorf("create item: %w", err)
	}

	existing, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, domain.Balance{}, fmt.Errorf("get item: %w", err)
	}
	if existing.Kind != input.NewItem.Kind {
		return nil, domain.Balance{}, domain.NewValidationError("new_item.kind", "item "+existing.ID.String()+" is a "+string(existing.Kind))
	}

	if input.WeightKg.IsZero() && existing.Kind == domain.ItemKindFinishedGood {
		amount.WeightKg = pieceWeight(existing, nil, amount.Quantity)
	}
	after, err := s.adjust(ctx, existing, input.Activity, amount)
	if err != nil {
		return nil, domain.Balance{}, err
	}
	existing.Balance = after
	return existing, amount, nil
}

// mutationAmount is the requested movement. Boxes given only by count are
// weighed by their unit weight.
func mutationAmount(input MutationInput, item *domain.InventoryItem, kind domain.ItemKind) domain.Balance {
	amount := domain.Balance{Quantity: input.Quantity, WeightKg: input.WeightKg}
	if kind == domain.ItemKindFinishedGood && amount.WeightKg.IsZero() {
		amount.WeightKg = pieceWeight(item, input.NewItem, amount.Quantity)
	}
	return amount
}

// adjust applies the signed delta through the conditional update and turns
// a negative-balance rejection into an InsufficientStockError.
func (s *Service) adjust(ctx context.Context, item *domain.InventoryItem, activity domain.ActivityType, amount domain.Balance) (domain.Balance, error) {
	delta := amount
	if activity.IsDepleting() {
		delta = amount.Neg()
	}

	after, err := s.items.AdjustBalance(ctx, item.ID, delta)
	if err == nil {
		return after, nil
	}
	if !errors.Is(err, domain.ErrNegativeBalance) {
		return domain.Balance{}, fmt.Errorf("adjust balance: %w", err)
	}

	available, getErr := s.items.GetBalance(ctx, item.ID)
	if getErr != nil {
		available = item.Balance
	}
	return domain.Balance{}, &domain.InsufficientStockError{
		ItemID:    item.ID,
		Requested: amount,
		Available: available,
	}
}

// pieceWeight is the weight of qty boxes, rounded to the stored precision.
func pieceWeight(item *domain.InventoryItem, n *NewItemInput, qty int64) decimal.Decimal {
	unit := decimal.Zero
	switch {
	case item != nil:
		unit = item.UnitWeight()
	case n != nil && n.FinishedGood != nil:
		unit = n.FinishedGood.UnitWeightKg
	}
	return unit.Mul(decimal.NewFromInt(qty)).Round(2)
}

func newItem(input MutationInput, opening domain.Balance, createdBy uuid.UUID) *domain.InventoryItem {
	id := input.ItemID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &domain.InventoryItem{
		ID:           id,
		Kind:         input.NewItem.Kind,
		Name:         strings.TrimSpace(input.NewItem.Name),
		Balance:      opening,
		RawMaterial:  input.NewItem.RawMaterial,
		FinishedGood: input.NewItem.FinishedGood,
		CreatedBy:    createdBy,
	}
}
