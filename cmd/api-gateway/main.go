package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/vle-dashboard-api/internal/handler"
	"github.com/noah-isme/vle-dashboard-api/internal/middleware"
	"github.com/noah-isme/vle-dashboard-api/internal/repository"
	"github.com/noah-isme/vle-dashboard-api/internal/service"
	"github.com/noah-isme/vle-dashboard-api/pkg/cache"
	"github.com/noah-isme/vle-dashboard-api/pkg/config"
	"github.com/noah-isme/vle-dashboard-api/pkg/database"
	"github.com/noah-isme/vle-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/vle-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/vle-dashboard-api/pkg/middleware/requestid"
)

// @title VLE Dashboard API
// @version 0.1.0
// @description Read-only analytics backend for the VLE student dashboard
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	// Cache backend: Redis when enabled, the in-process TTL map otherwise.
	// Both sit behind the same interface; composition code never knows which.
	var cacheBackend service.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		redisRepo := repository.NewCacheRepository(redisClient, logr)
		defer redisRepo.Close() //nolint:errcheck
		cacheBackend = redisRepo
	} else {
		cacheBackend = repository.NewMemoryCacheRepository()
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheBackend, metricsSvc, cfg.Analytics.CacheTTL, logr, cfg.Analytics.CacheEnabled)

	catalogRepo := repository.NewCatalogRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	vleRepo := repository.NewVLERepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	analyticsSvc := service.NewAnalyticsService(analyticsRepo, cacheSvc, metricsSvc, logr)
	scopeSvc := service.NewScopeService()
	dashboardSvc := service.NewDashboardService(
		catalogRepo,
		enrollmentRepo,
		assessmentRepo,
		vleRepo,
		analyticsSvc,
		scopeSvc,
		cacheSvc,
		cfg.Dashboard.CacheTTL,
		logr,
	)
	exportSvc := service.NewExportService(
		catalogRepo,
		enrollmentRepo,
		analyticsSvc,
		cfg.Export.Enabled,
		cfg.Export.MaxRows,
		logr,
	)

	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, enrollmentRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/students", catalogHandler.Students)
		api.GET("/instructors", catalogHandler.Instructors)
		api.GET("/presentations", catalogHandler.Presentations)

		api.GET("/analytics/final-scores", analyticsHandler.FinalScores)
		api.GET("/analytics/total-clicks", analyticsHandler.TotalClicks)
		api.GET("/analytics/module-counts", analyticsHandler.ModuleCounts)
		api.GET("/analytics/presentations/:id/results", analyticsHandler.ResultDistribution)
		api.GET("/analytics/presentations/:id/timeline", analyticsHandler.Timeline)
		api.GET("/analytics/enrollments/:id/assessments", analyticsHandler.AssessmentScores)
		api.GET("/analytics/audit/orphan-enrollments", analyticsHandler.OrphanEnrollments)
		api.GET("/analytics/system", analyticsHandler.System)

		api.GET("/dashboard/overview", dashboardHandler.Overview)
		api.GET("/dashboard/analytics", dashboardHandler.Analytics)
		api.GET("/dashboard/classes/:id", dashboardHandler.ClassDetail)
		api.GET("/dashboard/students/:id", dashboardHandler.StudentDetail)
		api.GET("/dashboard/enrollments/:id/activity", dashboardHandler.EnrollmentActivity)
		api.GET("/dashboard/instructors/:name", dashboardHandler.Instructor)

		api.GET("/export/classes/:id", exportHandler.ClassSummary)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "redis", cfg.Redis.Enabled)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
