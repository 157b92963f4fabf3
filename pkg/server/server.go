package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/conn-audit/pkg/handlers/audit"
	connauditmiddleware "github.com/de-tools/conn-audit/pkg/server/middleware"
	auditsvc "github.com/de-tools/conn-audit/pkg/services/audit"
	"github.com/de-tools/conn-audit/pkg/services/envref"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Settings auditsvc.Settings
	// EnvLookup resolves ${env:NAME} references; nil means the process
	// environment.
	EnvLookup envref.LookupFunc
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the audit API routes.
func ConfigureRouter(config Config) *chi.Mux {
	auditHandler := handlers.NewHandler(config.Dependencies.Settings, config.Dependencies.EnvLookup)

	router := chi.NewRouter()

	router.Use(connauditmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/audit", auditHandler.Audit)
		r.Post("/secure", auditHandler.Secure)
		r.Post("/env/validate", auditHandler.ValidateEnv)
		r.Post("/digest", auditHandler.Digest)
		r.Post("/digest/verify", auditHandler.VerifyDigest)
		r.Get("/templates/{archetype}", auditHandler.Template)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
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
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
