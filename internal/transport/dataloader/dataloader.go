// Package dataloader provides per-request DataLoaders that batch inventory
// lookups made while rendering ledger pages. Loaders call the repository
// directly; callers are expected to have authorized the surrounding request.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type itemRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.InventoryItem, error)
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	// ItemByID yields nil for items that no longer exist.
	ItemByID *dataloader.Loader[uuid.UUID, *domain.InventoryItem]
}

// NewLoaders creates a new set of DataLoaders. Must be called per request
// since loaders cache results for their whole lifetime.
func NewLoaders(items itemRepo) *Loaders {
	return &Loaders{
		ItemByID: newLoader(newItemsBatchFn(items)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func newItemsBatchFn(repo itemRepo) dataloader.BatchFunc[uuid.UUID, *domain.InventoryItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.InventoryItem] {
		items, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.InventoryItem](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.InventoryItem, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}

		results := make([]*dataloader.Result[*domain.InventoryItem], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.InventoryItem]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present, which means the middleware is missing.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
