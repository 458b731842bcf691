package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/ahbiggie/Bigeen-web/internal/config"
	"github.com/ahbiggie/Bigeen-web/pkg/apperror"
	"github.com/ahbiggie/Bigeen-web/pkg/logger"
	"github.com/ahbiggie/Bigeen-web/pkg/tracing"
	"github.com/ahbiggie/Bigeen-web/static"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// probePaths are kept out of request logs and traces.
var probePaths = []string{"/health", "/healthz", "/ready", "/metrics"}

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
}

// NewRouter builds the chi router with the shared middleware stack and static
// assets. Route groups register themselves on the returned router.
func NewRouter(p RouterParams) chi.Router {
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logger.RequestLogger(log, probePaths...),
		recoverer(log),
		middleware.StripSlashes,
	)
	if p.Config.Otel.Enabled() {
		r.Use(tracing.Middleware(p.Config.Otel.ServiceName, probePaths...))
	}

	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(static.FS)))
	r.Handle("/static/*", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	}))

	return r
}

// recoverer turns a panic into a logged 500 with the standard error body.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				apperror.Write(w, r, nil, apperror.ErrInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r chi.Router, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
