// Package summary builds read-only rollups over items, the ledger and
// wastage sales. Nothing here changes balances.
package summary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg summary . itemLister ledgerReader wastageLister partyLister policyGate summaryCache

type itemLister interface {
	List(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error)
}

type ledgerReader interface {
	List(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error)
	CountByActivity(ctx context.Context, f domain.LedgerFilter) ([]domain.ActivityCount, error)
	SumByActivitySince(ctx context.Context, activity domain.ActivityType, kind domain.ItemKind, since time.Time) (domain.Balance, error)
}

type wastageLister interface {
	List(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error)
}

type partyLister interface {
	List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

type policyGate interface {
	CurrentActor(ctx context.Context) (domain.Actor, error)
	Authorize(ctx context.Context, p domain.Permission) (domain.Actor, error)
}

type summaryCache interface {
	Get(ctx context.Context, key string, dst any) (gen int64, hit bool, err error)
	Set(ctx context.Context, gen int64, key string, v any) error
}

// Settings tune the dashboard.
type Settings struct {
	LowStockWeightKg    decimal.Decimal
	LowStockPieces      int64
	WindowDays          int
	RecentActivityLimit int
}

// Service computes summaries and the dashboard.
type Service struct {
	items    itemLister
	ledger   ledgerReader
	wastage  wastageLister
	parties  partyLister
	gate     policyGate
	cache    summaryCache
	settings Settings
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new summary service.
func NewService(
	log *slog.Logger,
	items itemLister,
	ledger ledgerReader,
	wastage wastageLister,
	parties partyLister,
	gate policyGate,
	cache summaryCache,
	settings Settings,
) *Service {
	if settings.WindowDays <= 0 {
		settings.WindowDays = 30
	}
	if settings.RecentActivityLimit <= 0 {
		settings.RecentActivityLimit = 10
	}
	return &Service{
		items:    items,
		ledger:   ledger,
		wastage:  wastage,
		parties:  parties,
		gate:     gate,
		cache:    cache,
		settings: settings,
		now:      time.Now,
		log:      log.With("service", "summary"),
	}
}

// cached loads key into dst, or computes it with fn and stores the result
// under the generation observed before fn ran. Cache failures are logged and
// fall through to fn.
func cached[T any](ctx context.Context, s *Service, key string, fn func(context.Context) (T, error)) (T, error) {
	var v T
	gen, hit, readErr := s.cache.Get(ctx, key, &v)
	if readErr != nil {
		s.log.WarnContext(ctx, "summary cache read failed", slog.String("key", key), slog.String("error", readErr.Error()))
	}
	if hit {
		return v, nil
	}

	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	// Without a generation there is nothing safe to write under.
	if readErr != nil {
		return v, nil
	}
	if err := s.cache.Set(ctx, gen, key, v); err != nil {
		s.log.WarnContext(ctx, "summary cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return v, nil
}

func itemNames(lists ...[]domain.InventoryItem) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for _, items := range lists {
		for _, it := range items {
			names[it.ID] = it.Name
		}
	}
	return names
}
