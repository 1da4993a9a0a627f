package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

var _ actorRepo = &actorRepoMock{}

type actorRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Actor, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *actorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	if mock.GetByIDFunc == nil {
		panic("actorRepoMock.GetByIDFunc: method is nil but actorRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *actorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
