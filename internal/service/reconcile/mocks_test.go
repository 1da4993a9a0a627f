package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

var _ balanceLister = &balanceListerMock{}

type balanceListerMock struct {
	ListBalancesFunc func(ctx context.Context) ([]domain.ItemBalance, error)

	calls struct {
		ListBalances []struct {
			Ctx context.Context
		}
	}
	lockListBalances sync.RWMutex
}

func (mock *balanceListerMock) ListBalances(ctx context.Context) ([]domain.ItemBalance, error) {
	if mock.ListBalancesFunc == nil {
		panic("balanceListerMock.ListBalancesFunc: method is nil but balanceLister.ListBalances was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListBalances.Lock()
	mock.calls.ListBalances = append(mock.calls.ListBalances, callInfo)
	mock.lockListBalances.Unlock()
	return mock.ListBalancesFunc(ctx)
}

func (mock *balanceListerMock) ListBalancesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListBalances.RLock()
	calls := mock.calls.ListBalances
	mock.lockListBalances.RUnlock()
	return calls
}

var _ ledgerReplayer = &ledgerReplayerMock{}

type ledgerReplayerMock struct {
	ReplayAllFunc func(ctx context.Context) ([]domain.ItemBalance, error)

	calls struct {
		ReplayAll []struct {
			Ctx context.Context
		}
	}
	lockReplayAll sync.RWMutex
}

func (mock *ledgerReplayerMock) ReplayAll(ctx context.Context) ([]domain.ItemBalance, error) {
	if mock.ReplayAllFunc == nil {
		panic("ledgerReplayerMock.ReplayAllFunc: method is nil but ledgerReplayer.ReplayAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReplayAll.Lock()
	mock.calls.ReplayAll = append(mock.calls.ReplayAll, callInfo)
	mock.lockReplayAll.Unlock()
	return mock.ReplayAllFunc(ctx)
}

func (mock *ledgerReplayerMock) ReplayAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockReplayAll.RLock()
	calls := mock.calls.ReplayAll
	mock.lockReplayAll.RUnlock()
	return calls
}

var _ locker = &lockerMock{}

type lockerMock struct {
	TryAcquireFunc func(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error)

	calls struct {
		TryAcquire []struct {
			Ctx context.Context
			Key string
			Ttl time.Duration
		}
	}
	lockTryAcquire sync.RWMutex
}

func (mock *lockerMock) TryAcquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	if mock.TryAcquireFunc == nil {
		panic("lockerMock.TryAcquireFunc: method is nil but locker.TryAcquire was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Ttl time.Duration
	}{
		Ctx: ctx,
		Key: key,
		Ttl: ttl,
	}
	mock.lockTryAcquire.Lock()
	mock.calls.TryAcquire = append(mock.calls.TryAcquire, callInfo)
	mock.lockTryAcquire.Unlock()
	return mock.TryAcquireFunc(ctx, key, ttl)
}

func (mock *lockerMock) TryAcquireCalls() []struct {
	Ctx context.Context
	Key string
	Ttl time.Duration
} {
	mock.lockTryAcquire.RLock()
	calls := mock.calls.TryAcquire
	mock.lockTryAcquire.RUnlock()
	return calls
}

var _ snapshotRunner = &snapshotRunnerMock{}

type snapshotRunnerMock struct {
	RunInSnapshotFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInSnapshot []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInSnapshot sync.RWMutex
}

func (mock *snapshotRunnerMock) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInSnapshotFunc == nil {
		panic("snapshotRunnerMock.RunInSnapshotFunc: method is nil but snapshotRunner.RunInSnapshot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInSnapshot.Lock()
	mock.calls.RunInSnapshot = append(mock.calls.RunInSnapshot, callInfo)
	mock.lockRunInSnapshot.Unlock()
	return mock.RunInSnapshotFunc(ctx, fn)
}

func (mock *snapshotRunnerMock) RunInSnapshotCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInSnapshot.RLock()
	calls := mock.calls.RunInSnapshot
	mock.lockRunInSnapshot.RUnlock()
	return calls
}
