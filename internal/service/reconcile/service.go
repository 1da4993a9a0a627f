// Package reconcile replays the ledger for every item and compares the
// result with the stored balance snapshot.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg reconcile . balanceLister ledgerReplayer locker snapshotRunner

type balanceLister interface {
	ListBalances(ctx context.Context) ([]domain.ItemBalance, error)
}

type ledgerReplayer interface {
	ReplayAll(ctx context.Context) ([]domain.ItemBalance, error)
}

type snapshotRunner interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type locker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

// LockKey names the lock that keeps reconciliation to one runner.
const LockKey = "reconcile"

// ErrAlreadyRunning is returned when another runner holds the lock.
var ErrAlreadyRunning = errors.New("reconciliation already running")

// Drift is an item whose snapshot disagrees with its replayed ledger.
type Drift struct {
	ItemID   uuid.UUID
	Kind     domain.ItemKind
	Snapshot domain.Balance
	Replayed domain.Balance
}

// Report is the outcome of one reconciliation run.
type Report struct {
	Checked int
	Drifts  []Drift
}

// Clean reports whether no drift was found.
func (r Report) Clean() bool { return len(r.Drifts) == 0 }

// Service checks the ledger against balance snapshots. It never writes.
type Service struct {
	balances balanceLister
	ledger   ledgerReplayer
	snapshot snapshotRunner
	lock     locker
	lockTTL  time.Duration
	log      *slog.Logger
}

// NewService creates a new reconcile service.
func NewService(log *slog.Logger, balances balanceLister, ledger ledgerReplayer, snapshot snapshotRunner, lock locker, lockTTL time.Duration) *Service {
	return &Service{
		balances: balances,
		ledger:   ledger,
		snapshot: snapshot,
		lock:     lock,
		lockTTL:  lockTTL,
		log:      log.With("service", "reconcile"),
	}
}

// Run compares every item's snapshot with its ledger replay. It fails with
// ErrAlreadyRunning when another runner holds the lock.
func (s *Service) Run(ctx context.Context) (Report, error) {
	release, ok, err := s.lock.TryAcquire(ctx, LockKey, s.lockTTL)
	if err != nil {
		return Report{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return Report{}, ErrAlreadyRunning
	}
	defer func() {
		if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
			s.log.WarnContext(ctx, "release reconcile lock", slog.String("error", relErr.Error()))
		}
	}()

	// Both reads see one snapshot; otherwise a mutation committed between
	// them shows up as drift.
	var snapshots, replayed []domain.ItemBalance
	err = s.snapshot.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if snapshots, err = s.balances.ListBalances(ctx); err != nil {
			return fmt.Errorf("list balances: %w", err)
		}
		if replayed, err = s.ledger.ReplayAll(ctx); err != nil {
			return fmt.Errorf("replay ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	report := Compare(snapshots, replayed)

	for _, d := range report.Drifts {
		s.log.WarnContext(ctx, "ledger drift",
			slog.String("item_id", d.ItemID.String()),
			slog.String("snapshot", d.Snapshot.String()),
			slog.String("replayed", d.Replayed.String()),
		)
	}
	s.log.InfoContext(ctx, "reconciliation finished",
		slog.Int("checked", report.Checked),
		slog.Int("drifts", len(report.Drifts)),
	)

	return report, nil
}

// Compare matches snapshots with replayed totals by item. Items present
// only in the ledger have been removed and must replay to zero.
func Compare(snapshots, replayed []domain.ItemBalance) Report {
	byItem := make(map[uuid.UUID]domain.ItemBalance, len(replayed))
	for _, r := range replayed {
		byItem[r.ItemID] = r
	}

	report := Report{Checked: len(snapshots)}
	for _, snap := range snapshots {
		r, ok := byItem[snap.ItemID]
		delete(byItem, snap.ItemID)
		if !ok {
			r = domain.ItemBalance{ItemID: snap.ItemID, Kind: snap.Kind}
		}
		if !snap.Balance.Equal(r.Balance) {
			report.Drifts = append(report.Drifts, Drift{ItemID: snap.ItemID, Kind: snap.Kind, Snapshot: snap.Balance, Replayed: r.Balance})
		}
	}

	for _, r := range replayed {
		if _, orphan := byItem[r.ItemID]; !orphan {
			continue
		}
		report.Checked++
		if !r.Balance.IsZero() {
			report.Drifts = append(report.Drifts, Drift{ItemID: r.ItemID, Kind: r.Kind, Replayed: r.Balance})
		}
	}
	return report
}
