package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "tracklab/internal/adapter/http"
	"tracklab/internal/adapter/identity"
	"tracklab/internal/adapter/postgres"
	"tracklab/internal/adapter/usecase"
	"tracklab/internal/config"
	"tracklab/internal/db"
)

// main is the entry point of the tracklab service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and usecases, then starts the HTTP server. On receiving a
// termination signal it flushes pending ledger writes and gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	workspaceRepo := postgres.NewWorkspaceRepository(pool)
	testRepo := postgres.NewTestRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	ids := identity.NewProvider(pool, []byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)

	failureMode := usecase.FailOpen
	if !cfg.Auth.FailOpen {
		failureMode = usecase.FailClosed
	}
	access := usecase.NewAccessService(workspaceRepo, failureMode, logger)
	invites := usecase.NewInvitationService(workspaceRepo, ids)
	finance := usecase.NewFinanceService(financeRepo, testRepo, ids, cfg.Ledger.Debounce, logger)
	tests := usecase.NewTestService(testRepo, finance)
	offers := usecase.NewOfferService(offerRepo)
	dashboard := usecase.NewDashboardService(testRepo, offerRepo)

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Access:    access,
		Invites:   invites,
		Finance:   finance,
		Tests:     tests,
		Offers:    offers,
		Dashboard: dashboard,
		Identity:  ids,
		Logger:    logger,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// Persist any ledger snapshots still waiting out their debounce window.
	finance.Close(shutdownCtx)

	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
