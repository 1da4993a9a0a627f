package party

import (
	"context"
	"sync"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

var _ partyRepo = &partyRepoMock{}

type partyRepoMock struct {
	CreateFunc func(ctx context.Context, p domain.Party) (domain.Party, error)
	ListFunc   func(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Party
		}
		List []struct {
			Ctx  context.Context
			Kind domain.PartyKind
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *partyRepoMock) Create(ctx context.Context, p domain.Party) (domain.Party, error) {
	if mock.CreateFunc == nil {
		panic("partyRepoMock.CreateFunc: method is nil but partyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Party
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *partyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Party
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *partyRepoMock) List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	if mock.ListFunc == nil {
		panic("partyRepoMock.ListFunc: method is nil but partyRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.PartyKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, kind)
}

func (mock *partyRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Kind domain.PartyKind
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ policyGate = &policyGateMock{}

type policyGateMock struct {
	AuthorizeFunc func(ctx context.Context, p domain.Permission) (domain.Actor, error)

	calls struct {
		Authorize []struct {
			Ctx context.Context
			P   domain.Permission
		}
	}
	lockAuthorize sync.RWMutex
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
