// Package http is the inbound HTTP adapter: the chi route table and the
// server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

// Handlers groups the HTTP handlers registered by NewRouter.
type Handlers struct {
	Filename *handlers.FilenameHandler
	Version  *handlers.VersionHandler
	Manifest *handlers.ManifestHandler
	Launch   *handlers.LaunchHandler
	Health   *handlers.HealthHandler
}

// NewRouter builds the route table. mws wrap every route, probes included,
// first outermost. Unknown paths get a problem+json 404.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(mws...))
	r.NotFound(notFound)

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/filenames/validate", h.Filename.Validate)
		r.Route("/versions", versionRoutes(h.Version))
		r.Get("/manifest", h.Manifest.ListRemote)
		r.Route("/launches", func(r chi.Router) {
			r.Get("/", h.Launch.ListLaunches)
			r.Post("/", h.Launch.StartLaunch)
			r.Get("/{id}", h.Launch.GetLaunch)
		})
		r.Post("/native/probe", h.Launch.Probe)
	})

	return r
}

func versionRoutes(v *handlers.VersionHandler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", v.ListVersions)

		// Static segments win over {name} in chi, so "current" is never
		// treated as a version folder.
		r.Get("/current", v.CurrentVersion)
		r.Put("/current", v.SelectVersion)

		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", v.GetVersion)
			r.Delete("/", v.DeleteVersion)
			r.Post("/rename", v.RenameVersion)
			r.Post("/copy", v.CopyVersion)
		})
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, fmt.Errorf("no route for %s %s: %w", r.Method, r.URL.Path, domain.ErrNotFound))
}
