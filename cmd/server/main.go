package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	donationapp "github.com/Odalissj/OperacionPollitoPF/internal/application/donation"
	inventoryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/inventory"
	salesapp "github.com/Odalissj/OperacionPollitoPF/internal/application/sales"
	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/infrastructure/cache"
	"github.com/Odalissj/OperacionPollitoPF/internal/infrastructure/config"
	"github.com/Odalissj/OperacionPollitoPF/internal/infrastructure/logger"
	"github.com/Odalissj/OperacionPollitoPF/internal/infrastructure/persistence"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/handler"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/middleware"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.FromAppConfig(cfg.Log))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Operación Pollito engine",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("driver", cfg.Database.Driver),
	)

	// Repositories and the per-workflow transaction scopes.
	scopes := persistence.NewScopeFactory(db, cfg.Database.LockTimeout)
	balanceRepo := persistence.NewGormCashBalanceRepository(db.DB)
	entryRepo := persistence.NewGormLedgerEntryRepository(db.DB)
	typeRepo := persistence.NewGormMovementTypeRepository(db.DB)
	generalRepo := persistence.NewGormGeneralStockRepository(db.DB)
	holdingRepo := persistence.NewGormBeneficiaryStockRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	donationRepo := persistence.NewGormDonationRepository(db.DB)
	auditRecorder := persistence.NewGormAuditRecorder(db.DB)

	// The movement type catalog is read on every movement; serve it through
	// the cache, falling back to in-memory when redis is unavailable.
	catalogCache, err := cache.NewCatalogCacheFactory(cfg.Redis,
		cache.WithLogger(log),
	).Create()
	if err != nil {
		log.Fatal("Failed to initialize catalog cache", zap.Error(err))
	}
	cachedTypes := cache.NewCachedMovementTypeRepository(typeRepo, catalogCache)

	// Application services.
	ledgerService := treasuryapp.NewCashLedgerService(
		scopes.TreasuryScope(), balanceRepo, entryRepo, cachedTypes, auditRecorder, log)
	allocationService := inventoryapp.NewAllocationService(
		scopes.InventoryScope(), generalRepo, holdingRepo, auditRecorder, log)
	saleService := salesapp.NewSaleService(
		scopes.SalesScope(), saleRepo, cachedTypes, auditRecorder, cfg.Business.CashPerUnit, log)
	donationService := donationapp.NewDonationService(
		scopes.DonationScope(), donationRepo, cachedTypes, auditRecorder, log)

	// HTTP engine.
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.RegisterValidators()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		middleware.CORSWithConfig(corsCfg),
		logger.GinMiddleware(log),
	)

	router.NewRouter(engine).
		Register(handler.NewCajaHandler(ledgerService)).
		Register(handler.NewInventarioHandler(allocationService)).
		Register(handler.NewVentaHandler(saleService)).
		Register(handler.NewDonacionHandler(donationService)).
		Register(handler.NewSystemHandler(db, version)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
