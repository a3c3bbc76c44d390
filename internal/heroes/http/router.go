package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/heroes/internal/heroes/service"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/pkg/httpx"
	"github.com/aussiebroadwan/heroes/pkg/slogx"

	_ "github.com/aussiebroadwan/heroes/api/heroes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *httpx.Metrics

	store       store.Store
	HeroService *service.HeroService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	metrics *httpx.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      metrics,
		logger:       logger,
	}

	// Metrics reads r.Pattern, so it must stay the innermost middleware.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerHeroes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Heroes API
//	@version		0.1.0
//	@description	Hero roster backing the Tour of Heroes client. Heroes are plain {id, name}
//	@description	records; ids are assigned by the server.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/heroes
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerHeroes() {
	h := &HeroesHandler{HeroService: r.HeroService}

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.ReadLimit))
	}

	// Writes must carry a JSON body
	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RateLimitByIP(httpx.WriteLimit),
			httpx.RequireJSON(),
		)
	}

	// GET /api/heroes and /api/heroes/ both list, or search when ?name= is present
	r.Mux.Handle("GET /api/heroes", read(h.HandleList))
	r.Mux.Handle("GET /api/heroes/{$}", read(h.HandleList))
	r.Mux.Handle("GET /api/heroes/{id}", read(h.HandleGet))

	r.Mux.Handle("POST /api/heroes", write(h.HandleCreate))
	r.Mux.Handle("PUT /api/heroes", write(h.HandleUpdate))

	// DELETE has no body to check
	r.Mux.Handle("DELETE /api/heroes/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.WriteLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.SystemLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.SystemLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(r.metrics.Handler(),
			httpx.RateLimitByIP(httpx.SystemLimit),
		),
	)
}
