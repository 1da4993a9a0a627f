package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/internal/transport/dataloader"
)

// History handles GET /ledger. Filters: item_id, actor_id, activity
// (repeatable), from, to, asc, limit.
func (h *StockHandler) History(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	f := domain.LedgerFilter{
		ItemID:     q.uuidParam("item_id"),
		ActorID:    q.uuidParam("actor_id"),
		Activities: q.activitiesParam("activity"),
		From:       q.timeParam("from"),
		To:         q.timeParam("to"),
		Ascending:  q.boolParam("asc"),
	}
	limit := q.intParam("limit")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.History(r.Context(), f, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out, err := withItemNames(r.Context(), entries)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// withItemNames resolves item names through the request's loaders so a page
// of entries costs one item query.
func withItemNames(ctx context.Context, entries []domain.LedgerEntry) ([]ledgerEntryResponse, error) {
	loaders := dataloader.FromContext(ctx)

	thunks := make([]func() (*domain.InventoryItem, error), len(entries))
	for i, e := range entries {
		if e.ItemID != nil {
			thunks[i] = loaders.ItemByID.Load(ctx, *e.ItemID)
		}
	}

	out := make([]ledgerEntryResponse, 0, len(entries))
	for i, e := range entries {
		resp := ledgerEntryResponse{LedgerEntry: e}
		if thunks[i] != nil {
			item, err := thunks[i]()
			if err != nil {
				return nil, fmt.Errorf("load item names: %w", err)
			}
			if item != nil {
				resp.ItemName = item.Name
			}
		}
		out = append(out, resp)
	}
	return out, nil
}
