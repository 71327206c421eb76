package main

import (
	"context"
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

	"github.com/foliocms/foliocms/handlers"
	"github.com/foliocms/foliocms/internal/auth"
	"github.com/foliocms/foliocms/internal/config"
	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/database"
	"github.com/foliocms/foliocms/internal/store"
	"github.com/foliocms/foliocms/internal/uploads"
	"github.com/foliocms/foliocms/pkg/logger"
	"github.com/foliocms/foliocms/pkg/metrics"
	"github.com/foliocms/foliocms/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%s db=%s uploads=%s", cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.Uploads.Backend)
	if cfg.JWT.SecretDefault {
		logger.Warnf("JWT_SECRET is not set; using the built-in development secret. Do not run like this in production.")
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.Use(middleware.Metrics())

	// Connect to Redis early so the rate limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimit(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	st := store.NewMongoStore(db)

	authSvc := auth.NewService(st, cfg.JWT.Secret, cfg.JWT.AccessTTL)
	if err := authSvc.EnsureDefaultAdmin(ctx); err != nil {
		logger.Fatalf("failed to ensure default admin: %v", err)
	}
	contentSvc := content.NewService(st)

	var backend uploads.Backend
	var localRoot string
	var minioBackend *uploads.MinIO
	switch cfg.Uploads.Backend {
	case "minio":
		minioBackend, err = uploads.NewMinIO(uploads.MinIOConfig{
			Endpoint:  cfg.Uploads.MinIOEndpoint,
			AccessKey: cfg.Uploads.MinIOAccessKey,
			SecretKey: cfg.Uploads.MinIOSecretKey,
			Bucket:    cfg.Uploads.MinIOBucket,
			UseSSL:    cfg.Uploads.MinIOUseSSL,
		})
		if err != nil {
			logger.Fatalf("failed to initialize MinIO backend: %v", err)
		}
		backend = minioBackend
		logger.Infof("uploads: MinIO backend, bucket %s", cfg.Uploads.MinIOBucket)
	default:
		local, lerr := uploads.NewLocal(cfg.Uploads.Dir)
		if lerr != nil {
			logger.Fatalf("failed to initialize upload directory: %v", lerr)
		}
		backend = local
		localRoot = local.Root()
		logger.Infof("uploads: local backend at %s", localRoot)
	}
	uploadsMgr := uploads.NewManager(backend)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies answer
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{}
		ready := true

		pctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["mongodb"] = client.Ping(pctx, nil) == nil
		if !deps["mongodb"] {
			ready = false
		}

		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil && rdb.Ping(pctx).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	guard := middleware.RequireAuth(authSvc, authSvc)

	api := r.Group("/api")
	handlers.NewAuthHandler(authSvc).Register(api, guard)
	handlers.NewPortfolioHandler(contentSvc).Register(api)
	handlers.NewAdminHandler(contentSvc).Register(api, guard)
	handlers.NewFilesHandler(uploadsMgr).Register(api, guard)

	if localRoot != "" {
		r.Static(uploads.PublicPath, localRoot)
	} else if minioBackend != nil {
		// asset URLs stay under the public path; redirect to presigned links
		r.GET(uploads.PublicPath+"/*key", handlers.AssetRedirect(minioBackend.PresignedGet))
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting portfolio API on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
}
