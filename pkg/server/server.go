package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	cataloghandler "github.com/de-tools/placement-atlas/pkg/handlers/catalog"
	planninghandler "github.com/de-tools/placement-atlas/pkg/handlers/planning"
	atlasmiddleware "github.com/de-tools/placement-atlas/pkg/server/middleware"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/deployment"
	"github.com/de-tools/placement-atlas/pkg/services/placement"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Catalog     *catalog.Catalog
	Deployments *deployment.Store
	Estimator   placement.Service
	Logger      zerolog.Logger
}

type Config struct {
	Addr                 string
	ShutdownTimeout      time.Duration
	PlannerMaxCandidates int
	Dependencies         Dependencies
}

// ConfigureRouter wires middleware and the /api/v1 routes; split out so
// tests can drive the router without a listening server.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	catHandler := cataloghandler.NewHandler(deps.Catalog, deps.Deployments)
	planHandler := planninghandler.NewHandler(
		deps.Catalog, deps.Deployments, deps.Estimator, config.PlannerMaxCandidates)

	router := chi.NewRouter()
	router.Use(atlasmiddleware.Logger(&deps.Logger))
	router.Use(atlasmiddleware.Metrics())
	router.Use(chimiddleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/nodes", catHandler.ListNodes)
		r.Post("/nodes", catHandler.PlaceNode)
		r.Delete("/nodes", catHandler.ClearNodes)
		r.Delete("/nodes/{id}", catHandler.DeleteNode)
		r.Get("/workloads", catHandler.ListWorkloads)
		r.Post("/estimates", planHandler.GetEstimates)
		r.Get("/rings", planHandler.GetRings)
		r.Post("/region-fill", planHandler.FillRegion)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &config.Dependencies.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
