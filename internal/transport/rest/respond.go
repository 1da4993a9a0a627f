package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// maxBodyBytes caps request bodies; every request here is a small form.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type insufficientStockResponse struct {
	Error     string         `json:"error"`
	ItemID    uuid.UUID      `json:"item_id"`
	Requested domain.Balance `json:"requested"`
	Available domain.Balance `json:"available"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to a status code. Unmapped errors are
// logged and reported as 500 without detail.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr  *domain.ValidationError
		stock *domain.InsufficientStockError
		serr  *domain.StoreError
	)

	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation error", Fields: make([]fieldError, 0, len(verr.Errors))}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &stock):
		writeJSON(w, http.StatusConflict, insufficientStockResponse{
			Error:     "insufficient stock",
			ItemID:    stock.ItemID,
			Requested: stock.Requested,
			Available: stock.Available,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &serr) && serr.Retryable():
		log.WarnContext(r.Context(), "transient store failure", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, "temporarily unavailable, retry")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a single JSON object from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryParser collects errors from several query parameters so a request
// with many bad parameters gets one response listing all of them.
type queryParser struct {
	r    *http.Request
	errs []domain.FieldError
}

func (p *queryParser) fail(name, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: name, Message: msg})
}

func (p *queryParser) uuidParam(name string) *uuid.UUID {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		p.fail(name, "must be a UUID")
		return nil
	}
	return &id
}

// timeParam accepts RFC 3339 timestamps and plain dates.
func (p *queryParser) timeParam(name string) *time.Time {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	p.fail(name, "must be RFC 3339 or YYYY-MM-DD")
	return nil
}

func (p *queryParser) intParam(name string) int {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		p.fail(name, "must be a non-negative integer")
		return 0
	}
	return n
}

func (p *queryParser) boolParam(name string) bool {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, fmt.Sprintf("invalid boolean %q", v))
	}
	return b
}

func (p *queryParser) activitiesParam(name string) []domain.ActivityType {
	var out []domain.ActivityType
	for _, v := range p.r.URL.Query()[name] {
		out = append(out, domain.ActivityType(v))
	}
	return out
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}
