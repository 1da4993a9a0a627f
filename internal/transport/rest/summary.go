package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/internal/service/summary"
)

type summaryService interface {
	FinishedGoodsSummary(ctx context.Context) ([]summary.Group[summary.FinishedGoodKey], error)
	RawMaterialsSummary(ctx context.Context) (*summary.RawMaterialsReport, error)
	WastageSummary(ctx context.Context, f domain.WastageFilter) (summary.WastageReport, error)
	ActivityCounts(ctx context.Context, f domain.LedgerFilter) ([]domain.ActivityCount, error)
	Dashboard(ctx context.Context) (*summary.Dashboard, error)
}

// SummaryHandler serves read-only reports.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

// FinishedGoods handles GET /summary/finished-goods.
func (h *SummaryHandler) FinishedGoods(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.FinishedGoodsSummary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// RawMaterials handles GET /summary/raw-materials.
func (h *SummaryHandler) RawMaterials(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.RawMaterialsSummary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Wastage handles GET /summary/wastage?from=&to=.
func (h *SummaryHandler) Wastage(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	f := domain.WastageFilter{From: q.timeParam("from"), To: q.timeParam("to")}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	report, err := h.svc.WastageSummary(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Activity handles GET /summary/activity with the same filters as /ledger.
func (h *SummaryHandler) Activity(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	f := domain.LedgerFilter{
		ItemID:     q.uuidParam("item_id"),
		ActorID:    q.uuidParam("actor_id"),
		Activities: q.activitiesParam("activity"),
		From:       q.timeParam("from"),
		To:         q.timeParam("to"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	counts, err := h.svc.ActivityCounts(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	type countResponse struct {
		Activity domain.ActivityType `json:"activity"`
		Count    int64               `json:"count"`
		Balance  domain.Balance      `json:"total"`
	}
	out := make([]countResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, countResponse{
			Activity: c.Activity,
			Count:    c.Count,
			Balance:  domain.Balance{Quantity: c.Quantity, WeightKg: c.WeightKg},
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Dashboard handles GET /dashboard.
func (h *SummaryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
