// Package stock is the only path that changes inventory balances. Every
// balance change is paired with exactly one ledger entry in the same
// transaction.
package stock

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg stock . inventoryRepo ledgerStore wastageRepo policyGate txManager cacheInvalidator

type inventoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	GetBalance(ctx context.Context, id uuid.UUID) (domain.Balance, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta domain.Balance) (domain.Balance, error)
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.Balance, error)
	List(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error)
}

type ledgerStore interface {
	Append(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error)
	List(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error)
}

type wastageRepo interface {
	Create(ctx context.Context, s domain.WastageSale) (domain.WastageSale, error)
	List(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error)
}

type policyGate interface {
	CurrentActor(ctx context.Context) (domain.Actor, error)
	Authorize(ctx context.Context, p domain.Permission) (domain.Actor, error)
	Permit(ctx context.Context, a domain.Actor, p domain.Permission) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

const (
	DefaultHistoryLimit = 50
	MaxNotesLength      = 500
	MaxNameLength       = 200
)

// Service applies stock mutations, wastage sales and item removal.
type Service struct {
	items      inventoryRepo
	ledger     ledgerStore
	wastage    wastageRepo
	gate       policyGate
	tx         txManager
	cache      cacheInvalidator
	maxHistory int
	log        *slog.Logger
}

// NewService creates a new stock service. maxHistory caps History page sizes.
func NewService(
	log *slog.Logger,
	items inventoryRepo,
	ledger ledgerStore,
	wastage wastageRepo,
	gate policyGate,
	tx txManager,
	cache cacheInvalidator,
	maxHistory int,
) *Service {
	if maxHistory <= 0 {
		maxHistory = DefaultHistoryLimit
	}
	return &Service{
		items:      items,
		ledger:     ledger,
		wastage:    wastage,
		gate:       gate,
		tx:         tx,
		cache:      cache,
		maxHistory: maxHistory,
		log:        log.With("service", "stock"),
	}
}

// invalidateSummaries drops cached read models after a committed change.
// A cache failure does not undo the committed mutation.
func (s *Service) invalidateSummaries(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "summary cache invalidation failed", slog.String("error", err.Error()))
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptr[T any](v T) *T { return &v }
