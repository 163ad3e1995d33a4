package httpx

import (
	"context"
	"net/http"
	"strings"
)

// ActorHeader is the header the fronting gateway uses to assert the acting
// user's identity. The engine itself never derives an implicit current user;
// every operation receives the actor explicitly.
const ActorHeader = "X-Actor-ID"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to a handler in declaration order: the first
// middleware in the list is the outermost wrapper.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// ActorMiddleware rejects requests without an X-Actor-ID header and injects
// the actor ID into the request context for downstream handlers.
func ActorMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actorID := strings.TrimSpace(r.Header.Get(ActorHeader))
			if actorID == "" {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "X-Actor-ID header is required",
				})
				return
			}

			ctx := context.WithValue(r.Context(), CtxKeyActorID, actorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
