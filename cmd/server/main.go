package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"estatecrm/internal/attribution"
	"estatecrm/internal/audit"
	"estatecrm/internal/cache"
	"estatecrm/internal/config"
	cronrunner "estatecrm/internal/cron"
	"estatecrm/internal/db"
	"estatecrm/internal/handler"
	"estatecrm/internal/logger"
	gormrepository "estatecrm/internal/repository/gorm"
	"estatecrm/internal/service"

	_ "estatecrm/docs"
)

func main() {
	cfgPath := os.Getenv("CRM_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("CRM_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	reportCache := cache.New(cfg.Redis)
	defer reportCache.Close()
	if reportCache == nil {
		logger.Info("redis not configured, report cache disabled")
	}

	settingsSvc := &service.SettingsService{Repo: store, Defaults: cfg.Commission}
	if err := settingsSvc.EnsureDefaultSwitches(context.Background()); err != nil {
		logger.Warn("init default feature switches failed", zap.Error(err))
	}

	reportSvc := &service.ROIReportService{
		Repo:     store,
		Cache:    reportCache,
		Channels: cfg.Attribution.Channels,
		Logger:   logger,
	}
	commissionSvc := &service.CommissionService{
		Repo:     store,
		Settings: settingsSvc,
		Reviewer: audit.NewReviewer(logger),
		Logger:   logger,
	}
	snapshotSvc := service.NewSnapshotService(cfg.Snapshot, store, reportSvc, settingsSvc, logger)
	sweeper := attribution.NewSweeper(cfg.Attribution, store, logger)

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)

	leadHandler := &handler.LeadHandler{Repo: store, Reports: reportSvc}
	leadHandler.Register(engine)
	dealHandler := &handler.DealHandler{Repo: store, Commission: commissionSvc, Reports: reportSvc}
	dealHandler.Register(engine)
	campaignHandler := &handler.CampaignHandler{Repo: store, Reports: reportSvc}
	campaignHandler.Register(engine)
	reportHandler := &handler.ReportHandler{Repo: store, Reports: reportSvc}
	reportHandler.Register(engine)
	settingsHandler := &handler.SettingsHandler{Settings: settingsSvc}
	settingsHandler.Register(engine)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		if cfg.Attribution.SweepEnabled {
			sweepTimeout := cfg.Attribution.SweepTimeout
			if sweepTimeout <= 0 {
				sweepTimeout = 2 * time.Minute
			}
			_, err := cronRunner.Add(cfg.Attribution.SweepSpec, func(ctx context.Context) {
				if !settingsSvc.IsEnabled(ctx, service.FeatureAttributionSweep, true) {
					return
				}
				sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
				defer cancel()
				if err := sweeper.Sweep(sweepCtx); err != nil {
					logger.Warn("attribution sweep failed", zap.Error(err))
				}
			})
			if err != nil {
				logger.Warn("cron register attribution sweep failed", zap.Error(err))
			}
		}
		if cfg.Snapshot.Enabled {
			_, err := cronRunner.Add(cfg.Snapshot.Spec, func(ctx context.Context) {
				if err := snapshotSvc.RunOnce(ctx); err != nil {
					logger.Warn("roi snapshot run failed", zap.Error(err))
				}
			})
			if err != nil {
				logger.Warn("cron register roi snapshot failed", zap.Error(err))
			}
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	// Label existing leads once at startup so channel filters work before
	// the first scheduled sweep.
	if cfg.Attribution.SweepEnabled {
		if err := sweeper.Sweep(ctx); err != nil {
			logger.Warn("initial attribution sweep failed (continuing)", zap.Error(err))
		}
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
