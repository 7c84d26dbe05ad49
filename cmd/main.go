package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	httpapi "storefront/internal/http"
	"storefront/internal/config"
	"storefront/internal/logging"
	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/service"

	_ "storefront/docs"
)

// @title Storefront API
// @version 1.0
// @description In-memory e-commerce backend: products, users, orders and carts.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	store := repository.NewMemoryStore()
	if cfg.Seed.Enabled {
		if err := repository.Seed(context.Background(), store); err != nil {
			logging.Fatal().Err(err).Msg("seed store")
		}
		logging.Info().Msg("seed data loaded")
	}
	tx := repository.NewMemoryTx(store)

	deps := httpapi.Deps{
		Products: service.NewProductService(store, tx),
		Orders:   service.NewOrderService(repository.NewMemoryOrders(store), tx),
		Users:    service.NewUserService(repository.NewMemoryUsers(store), tx),
		Carts:    service.NewCartService(repository.NewMemoryCarts(store), store, tx),
		CORS:     cfg.CORS,
		Swagger:  cfg.Server.Swagger,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New(store)
	}
	srv := httpapi.NewServer(deps)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv,
	}

	go func() {
		logging.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("shutdown error")
	}
	logging.Info().Msg("server stopped")
}
