package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/pkg/ctxutil"
)

type actorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
}

// Gate resolves the actor behind a request and checks permissions.
// It is the single policy decision point for stock operations.
type Gate struct {
	log    *slog.Logger
	actors actorRepo
}

// NewGate creates a Gate that loads actors from actors.
func NewGate(log *slog.Logger, actors actorRepo) *Gate {
	return &Gate{log: log.With("component", "auth_gate"), actors: actors}
}

// CurrentActor returns the actor whose ID the auth middleware put in ctx.
// A missing ID or an unknown actor yields domain.ErrUnauthorized.
func (g *Gate) CurrentActor(ctx context.Context) (domain.Actor, error) {
	id, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	a, err := g.actors.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Actor{}, fmt.Errorf("actor %s: %w", id, domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.Actor{}, fmt.Errorf("load actor: %w", err)
	}
	return *a, nil
}

// Authorize returns the current actor if it holds p, or a
// *domain.PermissionError otherwise.
func (g *Gate) Authorize(ctx context.Context, p domain.Permission) (domain.Actor, error) {
	a, err := g.CurrentActor(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if err := g.Permit(ctx, a, p); err != nil {
		return domain.Actor{}, err
	}
	return a, nil
}

// Permit checks p for an actor already resolved with CurrentActor. Callers
// that must load a resource before they know which permission applies
// resolve the actor first so anonymous requests never reach the store.
func (g *Gate) Permit(ctx context.Context, a domain.Actor, p domain.Permission) error {
	if a.Can(p) {
		return nil
	}
	g.log.WarnContext(ctx, "permission denied",
		slog.String("actor_id", a.ID.String()),
		slog.String("permission", p.String()),
	)
	return &domain.PermissionError{ActorID: a.ID, Permission: p}
}
