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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eonet/internal/apperr"
	"eonet/internal/config"
	cronrunner "eonet/internal/cron"
	"eonet/internal/db"
	"eonet/internal/dto"
	"eonet/internal/handler"
	"eonet/internal/logger"
	"eonet/internal/repository"
	gormrepository "eonet/internal/repository/gorm"
	"eonet/internal/repository/memory"
	"eonet/internal/service"

	_ "eonet/docs"
)

func main() {
	cfgPath := os.Getenv("EONET_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("EONET_ENV_ONLY"); envOnlyRaw != "" {
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

	var (
		store  repository.EventRepository
		dbConn *db.DB
	)
	if cfg.DB.DSN == "" {
		logger.Warn("no database configured, using in-memory store")
		store = memory.NewStore()
	} else {
		dbConn, err = db.Open(cfg.DB)
		if err != nil {
			logger.Fatal("db open failed", zap.Error(err))
		}
		defer db.Close(dbConn)

		if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
			logger.Warn("failed to set timezone", zap.Error(err))
		}
		if err := db.AutoMigrate(dbConn); err != nil {
			logger.Fatal("auto-migrate failed", zap.Error(err))
		}
		store = gormrepository.New(dbConn.Gorm)
	}

	eventService := &service.EventService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", zap.Any("panic", recovered))
		e := apperr.Internal()
		c.AbortWithStatusJSON(e.Status, dto.ErrorResponse{
			Error:     e.Code,
			Message:   e.Message,
			Code:      e.Status,
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
	}))
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbGorm(dbConn)}
	healthHandler.Register(engine)
	eventHandler := &handler.EventHandler{
		Service: eventService,
		Logger:  logger,
	}
	eventHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err := cronRunner.Add(cfg.Cron.StatsInterval, func(ctx context.Context) {
			total, err := eventService.CountEvents(ctx)
			if err != nil {
				logger.Warn("stats count failed", zap.Error(err))
				return
			}
			open, err := eventService.CountEventsByStatus(ctx, "open")
			if err != nil {
				logger.Warn("stats count failed", zap.Error(err))
				return
			}
			closed, err := eventService.CountEventsByStatus(ctx, "closed")
			if err != nil {
				logger.Warn("stats count failed", zap.Error(err))
				return
			}
			logger.Info("event stats",
				zap.Int64("total", total),
				zap.Int64("open", open),
				zap.Int64("closed", closed),
			)
		})
		if err != nil {
			logger.Warn("cron register stats failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func dbGorm(conn *db.DB) *gorm.DB {
	if conn == nil {
		return nil
	}
	return conn.Gorm
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
