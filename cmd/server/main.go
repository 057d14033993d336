package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"skyward-labs/flightdeck/internal/api"
	"skyward-labs/flightdeck/internal/config"
	"skyward-labs/flightdeck/internal/db"
	"skyward-labs/flightdeck/internal/logging"
	"skyward-labs/flightdeck/internal/routes"
	"skyward-labs/flightdeck/internal/workers"
)

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer logging.Close()

	logging.Info("Starting flightdeck", "env", cfg.AppEnv, "port", cfg.Port)

	dsn := cfg.PostgresDSN()
	if err := db.InitPostgres(dsn); err != nil {
		logging.Fatal("Failed to connect to postgres (sqlx)", "error", err.Error())
	}
	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Fatal("Failed to connect to postgres (gorm)", "error", err.Error())
	}

	deps := api.InitDependencies(cfg, gormDB, db.DB)
	defer deps.Cache.Close()

	router := routes.NewRouter(deps)

	// /metrics lives on the outer mux so it bypasses auth and rate limits.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sweeper := workers.NewStaleFlightWorker(
		deps.Repos.Flights, deps.Metrics, cfg.StaleReservationAge, cfg.SweepInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := sweeper.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logging.Info("Shutting down HTTP server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Fatal("Server exited with error", "error", err.Error())
	}
	logging.Info("Shutdown complete")
}
