package stock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

var _ inventoryRepo = &inventoryRepoMock{}

type inventoryRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	GetBalanceFunc    func(ctx context.Context, id uuid.UUID) (domain.Balance, error)
	AdjustBalanceFunc func(ctx context.Context, id uuid.UUID, delta domain.Balance) (domain.Balance, error)
	CreateFunc        func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (domain.Balance, error)
	ListFunc          func(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetBalance []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AdjustBalance []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta domain.Balance
		}
		Create []struct {
			Ctx  context.Context
			Item *domain.InventoryItem
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx  context.Context
			Kind domain.ItemKind
		}
	}
	lockGetByID       sync.RWMutex
	lockGetBalance    sync.RWMutex
	lockAdjustBalance sync.RWMutex
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockList          sync.RWMutex
}

func (mock *inventoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("inventoryRepoMock.GetByIDFunc: method is nil but inventoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *inventoryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) GetBalance(ctx context.Context, id uuid.UUID) (domain.Balance, error) {
	if mock.GetBalanceFunc == nil {
		panic("inventoryRepoMock.GetBalanceFunc: method is nil but inventoryRepo.GetBalance was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetBalance.Lock()
	mock.calls.GetBalance = append(mock.calls.GetBalance, callInfo)
	mock.lockGetBalance.Unlock()
	return mock.GetBalanceFunc(ctx, id)
}

func (mock *inventoryRepoMock) GetBalanceCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetBalance.RLock()
	calls := mock.calls.GetBalance
	mock.lockGetBalance.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) AdjustBalance(ctx context.Context, id uuid.UUID, delta domain.Balance) (domain.Balance, error) {
	if mock.AdjustBalanceFunc == nil {
		panic("inventoryRepoMock.AdjustBalanceFunc: method is nil but inventoryRepo.AdjustBalance was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta domain.Balance
	}{
		Ctx:   ctx,
		ID:    id,
		Delta: delta,
	}
	mock.lockAdjustBalance.Lock()
	mock.calls.AdjustBalance = append(mock.calls.AdjustBalance, callInfo)
	mock.lockAdjustBalance.Unlock()
	return mock.AdjustBalanceFunc(ctx, id, delta)
}

func (mock *inventoryRepoMock) AdjustBalanceCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta domain.Balance
} {
	mock.lockAdjustBalance.RLock()
	calls := mock.calls.AdjustBalance
	mock.lockAdjustBalance.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if mock.CreateFunc == nil {
		panic("inventoryRepoMock.CreateFunc: method is nil but inventoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.InventoryItem
	}{
		Ctx:  ctx,
		Item: item,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *inventoryRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.InventoryItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) Delete(ctx context.Context, id uuid.UUID) (domain.Balance, error) {
	if mock.DeleteFunc == nil {
		panic("inventoryRepoMock.DeleteFunc: method is nil but inventoryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *inventoryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) List(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error) {
	if mock.ListFunc == nil {
		panic("inventoryRepoMock.ListFunc: method is nil but inventoryRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ItemKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, kind)
}

func (mock *inventoryRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Kind domain.ItemKind
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ ledgerStore = &ledgerStoreMock{}

type ledgerStoreMock struct {
	AppendFunc func(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error)
	ListFunc   func(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.LedgerEntry
		}
		List []struct {
			Ctx   context.Context
			F     domain.LedgerFilter
			Limit int
		}
	}
	lockAppend sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *ledgerStoreMock) Append(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error) {
	if mock.AppendFunc == nil {
		panic("ledgerStoreMock.AppendFunc: method is nil but ledgerStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.LedgerEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *ledgerStoreMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.LedgerEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *ledgerStoreMock) List(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error) {
	if mock.ListFunc == nil {
		panic("ledgerStoreMock.ListFunc: method is nil but ledgerStore.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		F     domain.LedgerFilter
		Limit int
	}{
		Ctx:   ctx,
		F:     f,
		Limit: limit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, limit)
}

func (mock *ledgerStoreMock) ListCalls() []struct {
	Ctx   context.Context
	F     domain.LedgerFilter
	Limit int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ wastageRepo = &wastageRepoMock{}

type wastageRepoMock struct {
	CreateFunc func(ctx context.Context, s domain.WastageSale) (domain.WastageSale, error)
	ListFunc   func(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.WastageSale
		}
		List []struct {
			Ctx context.Context
			F   domain.WastageFilter
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *wastageRepoMock) Create(ctx context.Context, s domain.WastageSale) (domain.WastageSale, error) {
	if mock.CreateFunc == nil {
		panic("wastageRepoMock.CreateFunc: method is nil but wastageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.WastageSale
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *wastageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.WastageSale
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wastageRepoMock) List(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error) {
	if mock.ListFunc == nil {
		panic("wastageRepoMock.ListFunc: method is nil but wastageRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.WastageFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *wastageRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.WastageFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ policyGate = &policyGateMock{}

type policyGateMock struct {
	CurrentActorFunc func(ctx context.Context) (domain.Actor, error)
	AuthorizeFunc    func(ctx context.Context, p domain.Permission) (domain.Actor, error)
	PermitFunc       func(ctx context.Context, a domain.Actor, p domain.Permission) error

	calls struct {
		CurrentActor []struct {
			Ctx context.Context
		}
		Authorize []struct {
			Ctx context.Context
			P   domain.Permission
		}
		Permit []struct {
			Ctx context.Context
			A   domain.Actor
			P   domain.Permission
		}
	}
	lockCurrentActor sync.RWMutex
	lockAuthorize    sync.RWMutex
	lockPermit       sync.RWMutex
}

func (mock *policyGateMock) CurrentActor(ctx context.Context) (domain.Actor, error) {
	if mock.CurrentActorFunc == nil {
		panic("policyGateMock.CurrentActorFunc: method is nil but policyGate.CurrentActor was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrentActor.Lock()
	mock.calls.CurrentActor = append(mock.calls.CurrentActor, callInfo)
	mock.lockCurrentActor.Unlock()
	return mock.CurrentActorFunc(ctx)
}

func (mock *policyGateMock) CurrentActorCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentActor.RLock()
	calls := mock.calls.CurrentActor
	mock.lockCurrentActor.RUnlock()
	return calls
}

func (mock *policyGateMock) Authorize(ctx context.Context, p domain.Permission) (domain.Actor, error) {
	if mock.AuthorizeFunc == nil {
		panic("policyGateMock.AuthorizeFunc: method is nil but policyGate.Authorize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Permission
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, callInfo)
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, p)
}

func (mock *policyGateMock) AuthorizeCalls() []struct {
	Ctx context.Context
	P   domain.Permission
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}

func (mock *policyGateMock) Permit(ctx context.Context, a domain.Actor, p domain.Permission) error {
	if mock.PermitFunc == nil {
		panic("policyGateMock.PermitFunc: method is nil but policyGate.Permit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Actor
		P   domain.Permission
	}{
		Ctx: ctx,
		A:   a,
		P:   p,
	}
	mock.lockPermit.Lock()
	mock.calls.Permit = append(mock.calls.Permit, callInfo)
	mock.lockPermit.Unlock()
	return mock.PermitFunc(ctx, a, p)
}

func (mock *policyGateMock) PermitCalls() []struct {
	Ctx context.Context
	A   domain.Actor
	P   domain.Permission
} {
	mock.lockPermit.RLock()
	calls := mock.calls.Permit
	mock.lockPermit.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ cacheInvalidator = &cacheInvalidatorMock{}

type cacheInvalidatorMock struct {
	InvalidateFunc func(ctx context.Context) error

	calls struct {
		Invalidate []struct {
			Ctx context.Context
		}
	}
	lockInvalidate sync.RWMutex
}

func (mock *cacheInvalidatorMock) Invalidate(ctx context.Context) error {
	if mock.InvalidateFunc == nil {
		panic("cacheInvalidatorMock.InvalidateFunc: method is nil but cacheInvalidator.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx)
}

func (mock *cacheInvalidatorMock) InvalidateCalls() []struct {
	Ctx context.Context
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
