package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pidgraph-labs/pidgraph/internal/artifacts"
	"github.com/pidgraph-labs/pidgraph/internal/config"
	apihandler "github.com/pidgraph-labs/pidgraph/internal/httpapi/handler"
	"github.com/pidgraph-labs/pidgraph/internal/jobqueue"
	"github.com/pidgraph-labs/pidgraph/internal/persistence"
)

// RouterDeps holds the dependencies the graph-construction routes need.
type RouterDeps struct {
	Artifacts   *artifacts.Client
	Producer    *jobqueue.Producer
	PipelineCfg config.PipelineConfig
}

// NewRouter builds the HTTP surface: health checks plus the three
// graph-construction routes (submit, status, result). The submit route is
// registered only when both deps.Artifacts and deps.Producer are set.
func NewRouter(logger *slog.Logger, s *persistence.Store, deps *RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	health := apihandler.NewHealthHandler(s.Pool())
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	if deps == nil {
		deps = &RouterDeps{}
	}

	graphConstruction := apihandler.NewGraphConstructionHandler(logger, s, deps.Artifacts, deps.Producer, deps.PipelineCfg)
	r.Route("/pids/{pid}/graph-construction", func(r chi.Router) {
		if deps.Artifacts != nil && deps.Producer != nil {
			r.Post("/", graphConstruction.Submit)
		}
		r.Get("/status", graphConstruction.Status)
		r.Get("/result", graphConstruction.Result)
	})

	return r
}
