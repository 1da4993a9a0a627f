package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/internal/service/stock"
)

//go:generate moq -out mocks_test.go -pkg rest . stockService summaryService partyService

// stockService defines the minimal interface needed by StockHandler.
type stockService interface {
	ApplyMutation(ctx context.Context, input stock.MutationInput) (*stock.MutationResult, error)
	RemoveItem(ctx context.Context, input stock.RemoveItemInput) (*domain.LedgerEntry, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error)
	RecordWastageSale(ctx context.Context, input stock.WastageSaleInput) (*stock.WastageSaleResult, error)
	ListWastageSales(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error)
	History(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error)
}

// StockHandler serves item, mutation and wastage-sale endpoints.
type StockHandler struct {
	svc stockService
	log *slog.Logger
}

// NewStockHandler creates a StockHandler.
func NewStockHandler(svc stockService, logger *slog.Logger) *StockHandler {
	return &StockHandler{svc: svc, log: logger.With("handler", "stock")}
}

// ListItems handles GET /items?kind=.
func (h *StockHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	kind := domain.ItemKind(r.URL.Query().Get("kind"))

	items, err := h.svc.ListItems(r.Context(), kind)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// GetItem handles GET /items/{id}.
func (h *StockHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// CreateItem handles POST /items: the first Add of a new item.
func (h *StockHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := stock.MutationInput{
		Activity: domain.ActivityAdd,
		Quantity: req.Quantity,
		WeightKg: req.WeightKg,
		Notes:    req.Notes,
		NewItem: &stock.NewItemInput{
			Kind: req.Kind,
			Name: req.Name,
		},
	}
	if req.ID != nil {
		input.ItemID = *req.ID
	}
	if req.RawMaterial != nil {
		rm := domain.RawMaterialAttrs(*req.RawMaterial)
		input.NewItem.RawMaterial = &rm
	}
	if req.FinishedGood != nil {
		fg := domain.FinishedGoodAttrs(*req.FinishedGood)
		input.NewItem.FinishedGood = &fg
	}

	result, err := h.svc.ApplyMutation(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse{Item: toItemResponse(&result.Item), Entry: result.Entry})
}

// Mutate handles POST /items/{id}/mutations.
func (h *StockHandler) Mutate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req mutationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.ApplyMutation(r.Context(), stock.MutationInput{
		ItemID:        id,
		Activity:      req.Activity,
		Quantity:      req.Quantity,
		WeightKg:      req.WeightKg,
		Notes:         req.Notes,
		ConvertTarget: req.ConvertTarget,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{Item: toItemResponse(&result.Item), Entry: result.Entry})
}

// RemoveItem handles DELETE /items/{id}. The body is optional.
func (h *StockHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req removeItemRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.RemoveItem(r.Context(), stock.RemoveItemInput{ItemID: id, Notes: req.Notes})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}
