package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hud/config"
	"hud/di"
	"hud/driver/cache"
	"hud/driver/hud_db"
	"hud/job"
	"hud/rest"
	"hud/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting hud server")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := hud_db.InitDBConnection(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.InitRedis(ctx, cfg.Cache.RedisURL)
	if err != nil {
		// The feed cache is best effort; run without it
		log.Warn("Failed to connect to redis, continuing without feed cache", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	container := di.NewApplicationComponents(pool, redisClient, cfg)

	scheduler := job.NewScheduler()
	scheduler.Register(job.NewRetentionSweepJob(container.SweepUsecase, cfg.Ingest.SweepInterval))
	if cfg.Ingest.Interval > 0 {
		scheduler.Register(job.NewScheduledIngestJob(
			container.IngestUsecase,
			container.Providers(),
			cfg.Ingest.Interval,
			cfg.Ingest.ProviderTimeout,
		))
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Error starting server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	scheduler.Shutdown()
	log.Info("Shutdown complete")
}
