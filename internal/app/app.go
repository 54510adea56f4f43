package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-suite/internal/config"
	"github.com/heartmarshall/myenglish-suite/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-suite/internal/transport/rest"
	"github.com/heartmarshall/myenglish-suite/internal/workspace"
)

// Run is the application entry point. It loads configuration, wires the
// catalog, session store and REST handlers, and serves until ctx is done.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("catalog", cfg.Catalog.Source),
	)

	cat, err := OpenCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cat.Close()

	sessions := workspace.NewStore(logger, cfg.Session.IdleTTL, cfg.Session.SweepInterval, cfg.Session.MaxSessions, NewWorkspaceFactory(logger, cat, cfg))
	defer sessions.Stop()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, cat, sessions, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewWorkspaceFactory builds workspaces over cat with the panel settings of cfg.
func NewWorkspaceFactory(logger *slog.Logger, cat *Catalog, cfg *config.Config) workspace.Factory {
	wcfg := workspace.Config{Listening: ListeningOptions(cfg), Delay: cfg.Panel.Delay}
	return func(id uuid.UUID) *workspace.Workspace {
		return workspace.New(logger, cat.Service, wcfg, id)
	}
}

// NewHandler mounts every route behind the middleware chain.
// Probes skip rate limiting.
func NewHandler(cfg *config.Config, logger *slog.Logger, cat *Catalog, sessions *workspace.Store, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	rest.NewHealthHandler(cat, cat.Source, BuildVersion()).Register(mux)
	rest.NewDashboardHandler(sessions, logger).Register(mux)
	rest.NewListeningHandler(sessions, logger).Register(mux)
	rest.NewReadingHandler(sessions, logger).Register(mux)
	rest.NewWritingHandler(sessions, logger).Register(mux)
	rest.NewVocabularyHandler(sessions, logger).Register(mux)
	rest.NewBatchHandler(NewBatchService(logger, cat, cfg.Synth), logger).Register(mux)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Session(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		chain = append(chain, middleware.ExceptPaths(limiter.Limit(cfg.RateLimit.RequestsPerMinute), "/live", "/ready", "/health"))
	}

	return middleware.Chain(chain...)(mux)
}
