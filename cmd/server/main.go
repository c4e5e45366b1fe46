package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"demonym/internal/person/service"
	"demonym/internal/person/store"
	"demonym/internal/platform/config"
	"demonym/internal/platform/database"
	"demonym/internal/platform/health"
	"demonym/internal/platform/httpserver"
	"demonym/internal/platform/logger"
	"demonym/internal/platform/metrics"
	httptransport "demonym/internal/transport/http"
	"demonym/migrations"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing demonym directory",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	m := metrics.New()
	healthHandler := health.New(cfg.Environment)

	pool, err := database.New(database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}

	var personStore service.Store
	if pool != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Apply(ctx, pool.DB()); err != nil {
			cancel()
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		cancel()
		personStore = store.NewPostgres(pool.DB())
		healthHandler.RegisterCheck("postgres", pool.Health)
		log.Info("using postgres person store")
	} else {
		personStore = store.NewInMemory()
		log.Warn("DEMONYM_DATABASE_URL not set, using in-memory person store")
	}

	svc := service.New(personStore, log, m)
	handler := httptransport.NewHandler(svc, log)
	router := httptransport.NewRouter(handler, log, httptransport.RouterConfig{
		JWTSigningKey:  cfg.JWTSigningKey,
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        m,
		Health:         healthHandler,
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if pool != nil {
		g.Go(func() error {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					stats := pool.Stats()
					m.DBOpenConns.Set(float64(stats.OpenConnections))
					m.DBIdleConns.Set(float64(stats.Idle))
				}
			}
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		return httpserver.Shutdown(srv, 10*time.Second)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	if pool != nil {
		if err := pool.Close(); err != nil {
			log.Error("closing database pool", "error", err)
		}
	}

	log.Info("server stopped")
}
