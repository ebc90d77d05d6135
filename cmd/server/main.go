package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/greenmart/pos/internal/auth"
	"github.com/greenmart/pos/internal/cache"
	"github.com/greenmart/pos/internal/config"
	"github.com/greenmart/pos/internal/db"
	"github.com/greenmart/pos/internal/es"
	"github.com/greenmart/pos/internal/events"
	"github.com/greenmart/pos/internal/httpserver"
	"github.com/greenmart/pos/internal/imagegen"
	"github.com/greenmart/pos/internal/logging"
	loggingmw "github.com/greenmart/pos/internal/middleware/logging"
	"github.com/greenmart/pos/internal/register"
	"github.com/greenmart/pos/internal/repo"
	"github.com/greenmart/pos/internal/search"
	"github.com/greenmart/pos/internal/service"
)

func main() {
	cfg := config.Load()

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTAccessSecret, "JWT_SECRET")
	config.MustNonEmptyBytes(cfg.JWTRefreshSecret, "JWT_REFRESH_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := repo.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()
	if producer == nil {
		logger.Warn("kafka disabled, KAFKA_BROKERS not set")
	}

	var indexer *search.Indexer
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		indexer = search.NewIndexer(esClient)
	} else {
		logger.Warn("search disabled, ES_URL not set")
	}

	productCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer productCache.Close()
	if productCache == nil {
		logger.Warn("catalog cache disabled, REDIS_ADDR not set")
	}

	gormRepo := &repo.GormRepo{DB: database}

	catalogSvc := &service.CatalogService{
		Repo:    gormRepo,
		Cache:   productCache,
		Indexer: indexer,
		Events:  producer,
	}
	categorySvc := &service.CategoryService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo, Events: producer}
	authSvc := &auth.Service{
		DB:            database,
		JWTSecret:     cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Products:   &httpserver.ProductHTTP{Svc: catalogSvc},
		Categories: &httpserver.CategoryHTTP{Svc: categorySvc},
		Orders:     &httpserver.OrderHTTP{Svc: orderSvc},
		Registers: &httpserver.RegisterHTTP{
			Store:   register.NewStore(),
			Catalog: catalogSvc,
			Orders:  orderSvc,
		},
		Images: &httpserver.ImageHTTP{Finder: imagegen.NewFinder()},
		Auth:   &httpserver.AuthHTTP{Svc: authSvc},
		AuthMW: &auth.Middleware{Svc: authSvc},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("pos listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("pos stopped")
}
