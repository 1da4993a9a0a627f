package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/boxstock-backend/internal/auth"
	"github.com/heartmarshall/boxstock-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Claims, error)
}

// Auth resolves a bearer token to an actor id in the request context.
// Anonymous requests pass through; the policy gate refuses them on any
// route that needs an actor. A token that fails validation is answered
// with 401 here so a stale client learns to refresh it.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := validator.Validate(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "invalid access token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActorID(r.Context(), claims.ActorID)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
