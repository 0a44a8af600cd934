package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/config"
	"github.com/mamadbah2/sewmaster/internal/repository"
	"github.com/mamadbah2/sewmaster/internal/repository/memory"
	"github.com/mamadbah2/sewmaster/internal/repository/mongodb"
	"github.com/mamadbah2/sewmaster/internal/repository/redis"
	"github.com/mamadbah2/sewmaster/internal/repository/sheets"
	"github.com/mamadbah2/sewmaster/internal/scheduler"
	"github.com/mamadbah2/sewmaster/internal/server/handlers"
	"github.com/mamadbah2/sewmaster/internal/server/router"
	commandsvc "github.com/mamadbah2/sewmaster/internal/service/commands"
	insightssvc "github.com/mamadbah2/sewmaster/internal/service/insights"
	reportingsvc "github.com/mamadbah2/sewmaster/internal/service/reporting"
	whatsappsvc "github.com/mamadbah2/sewmaster/internal/service/whatsapp"
	"github.com/mamadbah2/sewmaster/internal/service/workshop"
	"github.com/mamadbah2/sewmaster/pkg/clients/anthropic"
	"github.com/mamadbah2/sewmaster/pkg/clients/gemini"
	whatsappclient "github.com/mamadbah2/sewmaster/pkg/clients/whatsapp"
	"github.com/mamadbah2/sewmaster/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage backend; MongoDB doubles as the weekly report archive.
	var (
		blobs   repository.BlobStore
		archive reportingsvc.Archive
	)
	switch cfg.Storage.Driver {
	case config.StorageMongoDB:
		mongoRepo, err := mongodb.NewMongoDBRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		blobs, archive = mongoRepo, mongoRepo
	case config.StorageRedis:
		redisStore, err := redis.NewStore(ctx, cfg.Redis, baseLogger.Named("repo.redis"))
		if err != nil {
			baseLogger.Fatal("failed to init redis store", zap.Error(err))
		}
		defer func() { _ = redisStore.Close() }()
		blobs = redisStore
	default:
		baseLogger.Warn("using in-memory storage, data is lost on restart")
		blobs = memory.NewStore()
	}

	store := workshop.NewStore(blobs, workshop.Options{
		KeyPrefix:   cfg.Storage.KeyPrefix,
		Location:    cfg.Reporting.Location(),
		SeedCatalog: cfg.Catalog.SeedDefaults,
	}, baseLogger)
	if err := store.Load(ctx); err != nil {
		baseLogger.Fatal("failed to load workshop state", zap.Error(err))
	}
	if store.Degraded() {
		baseLogger.Warn("storage read failed, serving empty collections without saving them")
	}

	var exporter sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exporter = sheetsRepo
	}

	reportingSvc := reportingsvc.NewService(store, archive, exporter, baseLogger.Named("svc.reporting"))
	commandDispatcher := commandsvc.NewService(store, reportingSvc, baseLogger.Named("svc.commands"))

	// Initialize AI Client
	var generator insightssvc.Generator
	switch cfg.AI.Provider {
	case config.AIProviderAnthropic:
		generator = anthropic.NewClient(cfg.AI.AnthropicKey, cfg.AI.AnthropicModel)
		baseLogger.Info("anthropic ai client enabled", zap.String("model", cfg.AI.AnthropicModel))
	case config.AIProviderGemini:
		geminiClient, err := gemini.NewClient(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			baseLogger.Fatal("failed to init gemini client", zap.Error(err))
		}
		generator = geminiClient
		baseLogger.Info("gemini ai client enabled", zap.String("model", cfg.AI.GeminiModel))
	default:
		baseLogger.Warn("no ai provider configured, insights disabled")
	}
	insightsSvc := insightssvc.NewService(generator, baseLogger.Named("svc.insights"))

	var (
		whatsClient whatsappclient.Client
		notifier    scheduler.Notifier
	)
	if cfg.WhatsApp.Enabled() {
		whatsClient = whatsappclient.NewClient(cfg.WhatsApp)
	} else {
		baseLogger.Warn("whatsapp credentials missing, outbound messages disabled")
	}
	messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, commandDispatcher, baseLogger.Named("svc.whatsapp"))
	if cfg.WhatsApp.Enabled() && cfg.WhatsApp.ManagerID != "" {
		notifier = messagingSvc
	}

	engine := router.New(router.Handlers{
		Production: handlers.NewProductionHandler(store, baseLogger.Named("handlers.production")),
		Catalog:    handlers.NewCatalogHandler(store, baseLogger.Named("handlers.catalog")),
		Sales:      handlers.NewSalesHandler(store, baseLogger.Named("handlers.sales")),
		Reports:    handlers.NewReportHandler(store, insightsSvc, reportingSvc, baseLogger.Named("handlers.reports")),
		Webhook:    handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp")),
	}, baseLogger.Named("router"))

	// Initialize Scheduler
	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, notifier, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
