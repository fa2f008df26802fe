package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/internal/server"
	"github.com/noah-isme/school-admin-api/pkg/config"
	"github.com/noah-isme/school-admin-api/pkg/events"
	"github.com/noah-isme/school-admin-api/pkg/jobs"
	"github.com/noah-isme/school-admin-api/pkg/logger"
)

// @title School Admin API
// @version 1.0.0
// @description Student, teacher and result management for a single school
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := repository.NewStore(repository.WithCatalog(repository.DefaultCatalog()))
	if cfg.School.SeedDemo {
		if err := repository.SeedDemo(store); err != nil {
			logr.Fatal("failed to seed demo data", zap.Error(err))
		}
		logr.Info("demo data loaded", zap.Int("students", len(store.Students())), zap.Int("teachers", len(store.Teachers())))
	}

	publisher := newPublisher(cfg, logr)
	publisher.Start(context.Background())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.New(cfg, store, publisher, logr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := publisher.Shutdown(ctx); err != nil {
		logr.Warn("pending change events dropped", zap.Error(err))
	}
	logr.Info("server stopped")
}

// newPublisher connects to Redis when events are enabled. An unreachable
// server disables events instead of stopping startup.
func newPublisher(cfg *config.Config, logr *zap.Logger) *events.AsyncPublisher {
	queueCfg := jobs.Config{
		Workers:    cfg.Events.Workers,
		MaxRetries: cfg.Events.MaxRetries,
		Logger:     logr.Named("events"),
	}
	if !cfg.Events.Enabled {
		return events.NewAsyncPublisher(events.Nop{}, queueCfg)
	}
	client, err := events.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, change events disabled", zap.Error(err))
		return events.NewAsyncPublisher(events.Nop{}, queueCfg)
	}
	logr.Info("publishing change events", zap.String("channel", cfg.Events.Channel))
	return events.NewAsyncPublisher(events.NewRedisPublisher(client, cfg.Events.Channel), queueCfg)
}
