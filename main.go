package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/configs"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/logger"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/metrics"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/rabbitmq"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/routes"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const purgeInterval = 10 * time.Minute

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("flavour-hub", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *configs.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := configs.OpenDatabase(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return err
	}
	if err := configs.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := configs.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := configs.SeedCatalog(db, cfg.CatalogSeed); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewServerMetrics(reg)

	// Order events
	hub := ws.NewOrderHub(log.With("component", "order_hub"))
	publishers := services.Publishers{hub}
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.New(cfg.RabbitMQURL, "orders", log.With("component", "rabbitmq"))
		if err != nil {
			log.Warn("rabbitmq unavailable, order events stay local", "error", err)
		} else {
			defer mq.Close()
			publishers = append(publishers, services.BrokerPublisher{Broker: mq})
		}
	}

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Metrics:   m,
		Hub:       hub,
		Publisher: publishers,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(gctx) })
	g.Go(func() error {
		purgeSessions(gctx, repository.NewSessionRepository(db), log)
		return nil
	})
	g.Go(func() error {
		log.Info("server running", "addr", srv.Addr, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// purgeSessions drops expired session rows until ctx is done.
func purgeSessions(ctx context.Context, repo *repository.SessionRepository, log *slog.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.PurgeExpired(ctx, now)
			if err != nil {
				log.Warn("purge expired sessions", "error", err)
				continue
			}
			if n > 0 {
				log.Debug("purged expired sessions", "rows", n)
			}
		}
	}
}
