package httpx

import "context"

type ctxKey string

const (
	// CtxKeyActorID holds the acting user's ID as asserted by the fronting
	// gateway via the X-Actor-ID header.
	CtxKeyActorID ctxKey = "actor_id"
)

// ActorFromCtx returns the acting user's ID, or "" when no actor was attached.
func ActorFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyActorID).(string); ok {
		return v
	}
	return ""
}
