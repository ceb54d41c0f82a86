package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"recipebook/internal/config"
	"recipebook/internal/handler"
	"recipebook/internal/mealplan"
	"recipebook/internal/recipe"
	"recipebook/internal/server"
	"recipebook/internal/shoppinglist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	backend, closeBackend, err := newBackend(cfg)
	if err != nil {
		slog.Error("Storage initialization failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	if closeBackend != nil {
		defer closeBackend()
	}

	handler.InitValidator()

	planSvc := mealplan.NewService(mealplan.NewStore(backend))
	recipeClient := recipe.NewClient(cfg.CMSEndpoint, cfg.CMSToken, recipe.Options{
		CacheSize: cfg.RecipeCacheSize,
		CacheTTL:  cfg.RecipeCacheTTL,
	})
	listSvc := shoppinglist.NewService(recipeClient, planSvc)

	srv := server.NewServer(server.Options{
		Port:             cfg.Port,
		PlanService:      planSvc,
		ListService:      listSvc,
		RecipeFetcher:    recipeClient,
		CachePurger:      recipeClient,
		RevalidateSecret: cfg.RevalidateSecret,
	})

	// Run the server until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// newBackend builds the meal plan storage backend selected by config.
// The returned close function is nil for backends with nothing to release.
func newBackend(cfg *config.Config) (mealplan.Backend, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverFile:
		b, err := mealplan.NewFileBackend(cfg.StoragePath)
		return b, nil, err
	case config.StorageDriverSQLite:
		b, err := mealplan.NewSQLiteBackend(filepath.Join(cfg.StoragePath, "recipebook.db"))
		if err != nil {
			return nil, nil, err
		}
		return b, func() {
			if err := b.Close(); err != nil {
				slog.Warn("Closing storage failed", "error", err)
			}
		}, nil
	default:
		return mealplan.NewMemoryBackend(), nil, nil
	}
}
