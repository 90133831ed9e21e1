// Package main runs the stack4devs local backend.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stack4devs/stack4devs/internal/adapters/catalog"
	"github.com/stack4devs/stack4devs/internal/adapters/clients"
	"github.com/stack4devs/stack4devs/internal/adapters/clients/acl"
	"github.com/stack4devs/stack4devs/internal/adapters/flags"
	"github.com/stack4devs/stack4devs/internal/adapters/http"
	"github.com/stack4devs/stack4devs/internal/adapters/http/handlers"
	"github.com/stack4devs/stack4devs/internal/adapters/storage"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/platform/config"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
	"github.com/stack4devs/stack4devs/internal/platform/telemetry"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting stack4devs",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("catalog_source", cfg.Catalog.Source),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:       cfg.Telemetry.Enabled,
		Endpoint:      cfg.Telemetry.Endpoint,
		ServiceName:   cfg.Telemetry.ServiceName,
		Version:       cfg.App.Version,
		Environment:   cfg.App.Environment,
		SamplingRate:  cfg.Telemetry.SamplingRate,
		CatalogSource: cfg.Catalog.Source,
		StorageDriver: cfg.Storage.Driver,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := tel.Shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	registry := ports.NewHealthRegistry()

	cat, err := loadCatalog(ctx, cfg, logger, registry)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()

	if err := registry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	features, err := flags.New(cfg.Features)
	if err != nil {
		return err
	}

	metrics := telemetry.NewDomainMetrics(prometheus.DefaultRegisterer)

	accounts := app.NewAccountService(store, logger)
	settings := app.NewSettingsService(store, logger)

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	buildInfo.CatalogSource = cfg.Catalog.Source
	buildInfo.StorageDriver = cfg.Storage.Driver

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Timeout:     cfg.Server.RequestTimeout,
		Health:      handlers.NewHealthHandler(registry, buildInfo, prometheus.DefaultGatherer),
		Recommend: app.NewRecommendService(app.RecommendServiceConfig{
			Catalog:  cat,
			Settings: settings,
			Metrics:  metrics,
			Logger:   logger,
		}),
		Accounts:  accounts,
		Favorites: app.NewFavoritesService(store, accounts, logger),
		Settings:  settings,
		Community: app.NewCommunityService(app.CommunityServiceConfig{
			Store:        store,
			Catalog:      cat,
			Accounts:     accounts,
			Flags:        features,
			Metrics:      metrics,
			ShareBaseURL: cfg.Community.ShareBaseURL,
			Logger:       logger,
		}),
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// loadCatalog loads the catalog from the configured source. A remote
// catalog is fetched once at startup and stays registered for readiness.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger, registry *ports.DefaultHealthRegistry) (*catalog.Static, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		cat, err := catalog.LoadDir(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog from %s: %w", cfg.Catalog.Path, err)
		}

		return cat, nil
	case config.CatalogSourceRemote:
		remote := cfg.Catalog.Remote

		clientCfg := clients.ConfigFrom(cfg.Client, remote.Name, remote.BaseURL)
		clientCfg.Logger = logger

		client, err := clients.New(clientCfg)
		if err != nil {
			return nil, fmt.Errorf("creating catalog client: %w", err)
		}

		source := acl.NewCatalogClient(client, remote, logger)

		if err := registry.Register(source); err != nil {
			return nil, fmt.Errorf("registering catalog health check: %w", err)
		}

		cat, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading remote catalog: %w", err)
		}

		return cat, nil
	default:
		cat, err := catalog.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}

		return cat, nil
	}
}

func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
