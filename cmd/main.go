package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/app"
	"github.com/mark47B/pr-health-dashboard/internal/configs"
	"github.com/mark47B/pr-health-dashboard/internal/domain/prhealth"
	"github.com/mark47B/pr-health-dashboard/internal/infra/auth"
	"github.com/mark47B/pr-health-dashboard/internal/infra/github"
	"github.com/mark47B/pr-health-dashboard/internal/infra/storage/pg"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest"
	"github.com/mark47B/pr-health-dashboard/internal/logger"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatalw("server stopped with error", "error", err)
	}
}

func run(cfg *configs.Config, lg *zap.SugaredLogger) error {
	// Connect to database
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			lg.Warnw("failed to close db", "error", err)
		}
	}()

	if err := db.Ping(); err != nil {
		return err
	}

	if cfg.Database.Migrate {
		if err := pg.Migrate(db); err != nil {
			return err
		}
		lg.Info("database schema is up to date")
	}

	// Initialize service
	svc := app.NewService(app.Deps{
		Users:       pg.NewUserStorage(db, lg),
		Projects:    pg.NewProjectStorage(db, lg),
		Assignments: pg.NewAssignmentStorage(db, lg),
		TxManager:   pg.NewTxManager(db, lg),
		Source: github.NewClient(github.Options{
			BaseURL:  cfg.GitHub.APIURL,
			Token:    cfg.GitHub.Token,
			Timeout:  cfg.GitHub.Timeout,
			MaxPages: cfg.GitHub.MaxPages,
		}, lg),
		Hasher:  auth.NewBcryptHasher(0),
		Tokens:  auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL),
		Metrics: prhealth.Config{StaleThresholdDays: cfg.Metrics.StaleThresholdDays},
		Log:     lg,
	})

	if cfg.Admin.Email != "" {
		admin, err := svc.EnsureAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return err
		}
		lg.Infow("bootstrap admin ready", "user_id", admin.ID, "email", admin.Email)
	}

	router, err := rest.NewRouter(svc, lg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		lg.Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	lg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	lg.Info("server exited")
	return nil
}
