// Package app contains the application setup for the inventory service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/carstock/internal/config"
	"github.com/abgdnv/carstock/internal/inventory/service"
	"github.com/abgdnv/carstock/internal/inventory/store"
	"github.com/abgdnv/carstock/internal/inventory/transport/rest"
	"github.com/abgdnv/carstock/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	CarService service.CarService
	Logger     *slog.Logger
	StaticDir  string
}

func SetupDependencies(dbPool *pgxpool.Pool, logger *slog.Logger, staticDir string) *Dependencies {
	carService := service.NewService(store.NewPgStore(dbPool))

	return &Dependencies{
		CarService: carService,
		Logger:     logger,
		StaticDir:  staticDir,
	}
}

// SetupHttpHandler initializes the router and routes for the inventory service.
// Used by tests to exercise the HTTP surface without a listening socket.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the inventory service. The API
// routes always register; the static file collaborator mounts at the root
// only when a directory is configured.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	carHandler := rest.NewHandler(deps.CarService, deps.Logger)
	carHandler.RegisterRoutes(mux)

	if deps.StaticDir != "" {
		mux.Handle("/*", http.FileServer(http.Dir(deps.StaticDir)))
	}
}

// SetupHttpServer creates and configures an HTTP server for the inventory service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
