package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/internal/service/party"
)

type partyService interface {
	Create(ctx context.Context, kind domain.PartyKind, input party.CreateInput) (domain.Party, error)
	List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyHandler serves supplier and customer master data.
type PartyHandler struct {
	svc partyService
	log *slog.Logger
}

// NewPartyHandler creates a PartyHandler.
func NewPartyHandler(svc partyService, logger *slog.Logger) *PartyHandler {
	return &PartyHandler{svc: svc, log: logger.With("handler", "party")}
}

// Create returns the POST handler for parties of kind.
func (h *PartyHandler) Create(kind domain.PartyKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req partyRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		p, err := h.svc.Create(r.Context(), kind, party.CreateInput{
			Name:          req.Name,
			Email:         req.Email,
			ContactPerson: req.ContactPerson,
			Address:       req.Address,
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPartyResponse(p))
	}
}

// List returns the GET handler for parties of kind.
func (h *PartyHandler) List(kind domain.PartyKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parties, err := h.svc.List(r.Context(), kind)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}

		out := make([]partyResponse, 0, len(parties))
		for _, p := range parties {
			out = append(out, toPartyResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
