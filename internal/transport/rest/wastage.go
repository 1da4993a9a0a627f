package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/internal/service/stock"
)

type wastageSaleCreated struct {
	Sale  wastageSaleResponse `json:"sale"`
	Entry domain.LedgerEntry  `json:"entry"`
}

// RecordWastageSale handles POST /wastage-sales.
func (h *StockHandler) RecordWastageSale(w http.ResponseWriter, r *http.Request) {
	var req wastageSaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := stock.WastageSaleInput{
		ItemDescription: req.ItemDescription,
		Quantity:        req.Quantity,
		WeightKg:        req.WeightKg,
		SaleAmount:      req.SaleAmount,
		Notes:           req.Notes,
	}
	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		input.Date = d
	}

	result, err := h.svc.RecordWastageSale(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, wastageSaleCreated{Sale: toWastageSaleResponse(result.Sale), Entry: result.Entry})
}

// ListWastageSales handles GET /wastage-sales?from=&to=.
func (h *StockHandler) ListWastageSales(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	f := domain.WastageFilter{From: q.timeParam("from"), To: q.timeParam("to")}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sales, err := h.svc.ListWastageSales(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]wastageSaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toWastageSaleResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}
