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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/techfolio/portfolio-api/handlers"
	"github.com/techfolio/portfolio-api/internal/config"
	"github.com/techfolio/portfolio-api/internal/portfolio/handler"
	"github.com/techfolio/portfolio-api/internal/storage"
	"github.com/techfolio/portfolio-api/internal/store"
	"github.com/techfolio/portfolio-api/pkg/logger"
	"github.com/techfolio/portfolio-api/pkg/metrics"
	"github.com/techfolio/portfolio-api/pkg/middleware"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	logger.Infof("config loaded: driver=%s database=%s redis=%v minio=%v", cfg.Storage.Driver, cfg.Storage.Database, cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	if err := run(cfg); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, closeStore, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := closeStore(shutdownCtx); err != nil {
			logger.Warnf("closing store: %v", err)
		}
	}()
	s = store.Instrument(s)

	checks := map[string]handlers.Check{"storage": s.Ping}

	// Redis is optional; it backs the shared rate limiter when configured.
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	var contactLimits []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			contactLimits = append(contactLimits, middleware.RedisRateLimitMiddleware(rdb, "contact", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		} else {
			contactLimits = append(contactLimits, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		logger.Infof("contact rate limit: rps=%v burst=%d redis=%v", cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.UseRedis && rdb != nil)
	}

	var opts []handler.Option
	if cfg.MinIO.Endpoint != "" {
		archive, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("message archive disabled: %v", err)
		} else {
			opts = append(opts, handler.WithArchiver(archive))
			logger.Infof("archiving contact messages to bucket %s", cfg.MinIO.Bucket)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.RequestMetrics())
	r.Use(middleware.CORS())

	handler.New(s, opts...).Register(r, contactLimits...)
	handlers.RegisterHealth(r, checks)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return serve(ctx, srv, 10*time.Second)
}

// serve runs srv until ctx is done or the listener fails, then shuts it down.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("portfolio API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
