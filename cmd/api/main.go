package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/mhanac/storefront-backend/api/routes"
	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/mhanac/storefront-backend/internal/catalog/remote"
	cartsvc "github.com/mhanac/storefront-backend/internal/cart"
	"github.com/mhanac/storefront-backend/internal/i18n"
	"github.com/mhanac/storefront-backend/internal/selection"
	"github.com/mhanac/storefront-backend/pkg/config"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/mhanac/storefront-backend/pkg/metrics"
	"github.com/mhanac/storefront-backend/pkg/redis"
	"github.com/mhanac/storefront-backend/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redis.Client
	var sessionStore storage.KV
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		sessionStore = storage.NewRedis(redisClient, cfg.Session.TTL)
	} else {
		logg.Warn(context.Background(), "redis not configured, session state is in-process only")
		sessionStore = storage.NewMemory()
	}

	translator, err := i18n.New()
	if err != nil {
		logg.Error(context.Background(), "failed to load translations", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	var remoteSource catalog.Source
	if client := remote.NewClient(cfg.Catalog); client.Enabled() {
		remoteSource = client
	}

	catalogService := catalog.NewService(remoteSource, logg)
	selectionService := selection.NewService(sessionStore, logg)
	cartService := cartsvc.NewService(sessionStore, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			promRegistry,
			httpMetrics,
			selectionService,
			catalogService,
			cartService,
			translator,
		),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "storefront server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")

		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := server.Shutdown(stopCtx)
		if redisClient != nil {
			err = multierr.Append(err, redisClient.Close())
		}
		if err != nil {
			logg.Error(ctx, "shutdown finished with errors", err)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
