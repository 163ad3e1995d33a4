package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/pkg/httpx"
	"github.com/gridline/crewhub/pkg/slogx"

	_ "github.com/gridline/crewhub/api/team" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	ProjectService    *service.ProjectService
	MembershipService *service.MembershipService
	CrewService       *service.CrewService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProjects()
	r.registerInvitations()
	r.registerTeam()
	r.registerCrews()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CrewHub Team Service API
//	@version		0.1.0
//	@description	Project team and crew authorization engine: membership lifecycle, single-use
//	@description	invitation tokens, role-based permission checks, and crew composition.
//	@description
//	@description	The acting user is asserted by the fronting gateway via the X-Actor-ID header;
//	@description	every mutating operation is evaluated against that user's project role.
//
//	@contact.name				Gridline Team
//	@contact.url				https://github.com/gridline/crewhub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{
		ProjectService:    r.ProjectService,
		MembershipService: r.MembershipService,
	}

	// POST /v1/projects - moderate rate limit by actor (mutation)
	r.Mux.Handle("POST /v1/projects",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)

	// GET /v1/projects/{id} - lenient rate limit (read)
	r.Mux.Handle("GET /v1/projects/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)

	// Archive and unarchive flip a whole project; moderate limit is plenty.
	r.Mux.Handle("POST /v1/projects/{id}/archive",
		httpx.Chain(http.HandlerFunc(h.HandleArchive),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/projects/{id}/unarchive",
		httpx.Chain(http.HandlerFunc(h.HandleUnarchive),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{MembershipService: r.MembershipService}

	// POST /v1/projects/{id}/invitations - moderate rate limit by actor
	r.Mux.Handle("POST /v1/projects/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleInvite),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)

	// POST /v1/invitations/accept - strict rate limit by IP (token guessing)
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.ActorMiddleware(),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/invitations/decline - strict rate limit by IP; no actor
	// required, holding the token is proof enough.
	r.Mux.Handle("POST /v1/invitations/decline",
		httpx.Chain(http.HandlerFunc(h.HandleDecline),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTeam() {
	h := &TeamHandler{MembershipService: r.MembershipService}

	// GET /v1/projects/{id}/team - lenient rate limit (read)
	r.Mux.Handle("GET /v1/projects/{id}/team",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/projects/{id}/team/{userID}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)

	// Role changes and removals are mutations; moderate rate limit by actor.
	r.Mux.Handle("PATCH /v1/projects/{id}/team/{userID}",
		httpx.Chain(http.HandlerFunc(h.HandleChangeRole),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/projects/{id}/team/{userID}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCrews() {
	h := &CrewsHandler{CrewService: r.CrewService}

	r.Mux.Handle("POST /v1/projects/{id}/crews",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/projects/{id}/crews",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/crews/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDeactivate),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/crews/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleAddMember),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/crews/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleListMembers),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/crews/{id}/members/{userID}",
		httpx.Chain(http.HandlerFunc(h.HandleRemoveMember),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/crews/{id}/candidates",
		httpx.Chain(http.HandlerFunc(h.HandleCandidates),
			httpx.ActorMiddleware(),
			httpx.RateLimitByActor(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
