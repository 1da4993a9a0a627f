// Package party manages supplier and customer master data.
package party

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg party . partyRepo policyGate

type partyRepo interface {
	Create(ctx context.Context, p domain.Party) (domain.Party, error)
	List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

type policyGate interface {
	Authorize(ctx context.Context, p domain.Permission) (domain.Actor, error)
}

const maxNameLength = 200

// CreateInput describes a new supplier or customer.
type CreateInput struct {
	Name          string
	Email         *string
	ContactPerson *string
	Address       *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if email := trimOrNil(i.Email); email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Service creates and lists parties. Suppliers are guarded by the
// suppliers module, customers by the customers module.
type Service struct {
	parties partyRepo
	gate    policyGate
	log     *slog.Logger
}

// NewService creates a new party service.
func NewService(log *slog.Logger, parties partyRepo, gate policyGate) *Service {
	return &Service{
		parties: parties,
		gate:    gate,
		log:     log.With("service", "party"),
	}
}

// Create stores a new party of kind. Requires manage on the kind's module.
func (s *Service) Create(ctx context.Context, kind domain.PartyKind, input CreateInput) (domain.Party, error) {
	if !kind.IsValid() {
		return domain.Party{}, domain.NewValidationError("kind", "must be supplier or customer")
	}
	actor, err := s.gate.Authorize(ctx, domain.Permission{Module: kind.Module(), Action: domain.ActionManage})
	if err != nil {
		return domain.Party{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Party{}, err
	}

	p, err := s.parties.Create(ctx, domain.Party{
		Kind:          kind,
		Name:          strings.TrimSpace(input.Name),
		Email:         trimOrNil(input.Email),
		ContactPerson: trimOrNil(input.ContactPerson),
		Address:       trimOrNil(input.Address),
	})
	if err != nil {
		return domain.Party{}, fmt.Errorf("create %s: %w", kind, err)
	}

	s.log.InfoContext(ctx, "party created",
		slog.String("actor_id", actor.ID.String()),
		slog.String("kind", string(kind)),
		slog.String("party_id", p.ID.String()),
	)
	return p, nil
}

// List returns all parties of kind by name. Requires view on the kind's module.
func (s *Service) List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be supplier or customer")
	}
	if _, err := s.gate.Authorize(ctx, domain.Permission{Module: kind.Module(), Action: domain.ActionView}); err != nil {
		return nil, err
	}

	parties, err := s.parties.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", kind, err)
	}
	return parties, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
