package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/seo-monitor/internal/adapter/bolt"
	"github.com/user/seo-monitor/internal/adapter/chromedp_fetcher"
	"github.com/user/seo-monitor/internal/adapter/httpfetch"
	"github.com/user/seo-monitor/internal/adapter/postgres"
	redis_adapter "github.com/user/seo-monitor/internal/adapter/redis"
	"github.com/user/seo-monitor/internal/adapter/throttle"
	"github.com/user/seo-monitor/internal/analysis"
	"github.com/user/seo-monitor/internal/delivery/http/handler"
	"github.com/user/seo-monitor/internal/delivery/http/router"
	"github.com/user/seo-monitor/internal/delivery/http/server"
	"github.com/user/seo-monitor/internal/repository"
	"github.com/user/seo-monitor/internal/usecase"
	"github.com/user/seo-monitor/pkg/config"
	"github.com/user/seo-monitor/pkg/logger"
	"github.com/user/seo-monitor/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic("could not build logger: " + err.Error())
	}
	defer log.Sync()

	// --- Metrics ---
	metrics.Init()

	ctx := context.Background()
	checks := make(map[string]handler.Pinger)

	// --- Report store ---
	var reports repository.ReportRepository
	switch cfg.ReportStore {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal("unable to create postgres pool", zap.Error(err))
		}
		defer pool.Close()

		repo := postgres.NewReportRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal("unable to prepare report schema", zap.Error(err))
		}
		reports = repo
		checks["postgres"] = repo
		log.Info("using postgres report store")
	case "bolt":
		repo, err := bolt.NewReportRepo(cfg.BoltPath)
		if err != nil {
			log.Fatal("unable to open bolt report store", zap.String("path", cfg.BoltPath), zap.Error(err))
		}
		defer repo.Close()
		reports = repo
		log.Info("using bolt report store", zap.String("path", cfg.BoltPath))
	default:
		log.Fatal("unknown report store", zap.String("report_store", cfg.ReportStore))
	}

	// --- Analysis cache ---
	var cache repository.AnalysisCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		redisCache := redis_adapter.NewAnalysisCache(rdb)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis is not reachable yet, analyses will be recomputed until it is", zap.Error(err))
		}
		cache = redisCache
		checks["redis"] = redisCache
	} else {
		log.Info("analysis cache disabled")
	}

	// --- Page fetcher ---
	fetchTimeout := time.Duration(cfg.FetchTimeout) * time.Second
	var fetcher repository.PageFetcher
	switch cfg.FetchMode {
	case "chromedp":
		fetcher = chromedp_fetcher.NewChromedpFetcher(cfg.BatchWorkers, fetchTimeout, cfg.FetchUserAgent, log)
	case "http":
		fetcher = httpfetch.New(fetchTimeout, cfg.FetchUserAgent)
	default:
		log.Fatal("unknown fetch mode", zap.String("fetch_mode", cfg.FetchMode))
	}
	fetcher = throttle.New(fetcher, cfg.FetchRate, cfg.FetchBurst)

	// --- Use cases ---
	engine := analysis.New(cfg.Site())
	analyzer := usecase.NewURLAnalyzer(engine, cache, reports, usecase.AnalyzerOptions{
		BatchWorkers: cfg.BatchWorkers,
		MaxBatchSize: cfg.MaxBatchSize,
		CacheTTL:     time.Duration(cfg.CacheTTLHours) * time.Hour,
	}, log)
	auditor := usecase.NewPageAuditor(engine, fetcher, log)

	// --- HTTP server ---
	apiHandler := handler.NewHandler(analyzer, auditor, checks, log)
	srv := server.New(cfg.ServerPort, router.New(apiHandler, log))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not start server", zap.Error(err))
		}
	}()

	log.Info("server started",
		zap.String("port", cfg.ServerPort),
		zap.String("domain", engine.Site().Domain),
		zap.String("fetch_mode", fetcher.Mode()),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}
