// Package ctxutil carries the request id and the authenticated actor id
// through context.Context. The actor's role and permissions are not stored
// here; the policy gate loads them per request.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	actorIDKey   struct{}
	requestIDKey struct{}
)

// WithActorID stores the id taken from a validated access token.
func WithActorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey{}, id)
}

// ActorIDFromCtx returns the actor id, or false for anonymous requests. A
// stored uuid.Nil counts as anonymous.
func ActorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(actorIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
