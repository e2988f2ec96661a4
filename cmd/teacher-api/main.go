package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aptipro/teacher-api/api/swagger"
	"github.com/aptipro/teacher-api/internal/handler"
	"github.com/aptipro/teacher-api/internal/middleware"
	"github.com/aptipro/teacher-api/internal/repository"
	"github.com/aptipro/teacher-api/internal/service"
	"github.com/aptipro/teacher-api/pkg/cache"
	"github.com/aptipro/teacher-api/pkg/cipher"
	"github.com/aptipro/teacher-api/pkg/config"
	"github.com/aptipro/teacher-api/pkg/database"
	"github.com/aptipro/teacher-api/pkg/export"
	"github.com/aptipro/teacher-api/pkg/logger"
	corsmiddleware "github.com/aptipro/teacher-api/pkg/middleware/cors"
	reqidmiddleware "github.com/aptipro/teacher-api/pkg/middleware/requestid"
)

// @title AptiPro Teacher API
// @version 1.0.0
// @description Teacher-facing backend for the AptiPro testing platform
// @BasePath /
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
	sugar := logr.Sugar()

	passwordCipher, err := cipher.New(cfg.Cipher.Key)
	if err != nil {
		sugar.Fatalw("failed to init password cipher", "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		sugar.Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Results.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			sugar.Warnw("redis unreachable, result caching disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	validate := service.NewValidator()
	metricsSvc := service.NewMetricsService()

	teacherRepo := repository.NewTeacherRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	testRepo := repository.NewTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	authSvc := service.NewAuthService(db, teacherRepo, departmentRepo, subjectRepo, testRepo, resultRepo, passwordCipher, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      "aptipro-teacher-api",
	})
	testSvc := service.NewTestService(db, testRepo, teacherRepo, validate, logr)
	questionSvc := service.NewQuestionService(db, questionRepo, validate, logr)
	resultSvc := service.NewResultService(resultRepo, cacheRepo, metricsSvc, service.ResultConfig{
		CacheEnabled: cfg.Results.CacheEnabled && redisClient != nil,
		CacheTTL:     cfg.Results.CacheTTL,
	}, logr, export.NewCSVExporter(), export.NewPDFExporter())

	authHandler := handler.NewAuthHandler(authSvc)
	testHandler := handler.NewTestHandler(testSvc)
	questionHandler := handler.NewQuestionHandler(questionSvc)
	resultHandler := handler.NewResultHandler(resultSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.POST("/signup", authHandler.Signup)
	r.POST("/verify", authHandler.Verify)
	r.POST("/login", authHandler.Login)
	r.GET("/me", middleware.JWT(authSvc), authHandler.Me)

	r.POST("/create_test", testHandler.Create)
	r.POST("/questions", questionHandler.Create)

	r.GET("/results", resultHandler.List)
	r.GET("/results/export", resultHandler.Export)

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	sugar.Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		sugar.Fatalw("server failed", "error", err)
	}
}
