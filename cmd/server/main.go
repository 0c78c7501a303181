package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mrvl-backend/internal/cache"
	"mrvl-backend/internal/config"
	"mrvl-backend/internal/database"
	"mrvl-backend/internal/handlers"
	"mrvl-backend/internal/logger"
	"mrvl-backend/internal/middleware"
	"mrvl-backend/internal/repository"
	"mrvl-backend/internal/router"
	"mrvl-backend/internal/services"
	"mrvl-backend/internal/websocket"
	"mrvl-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	logger.L.Info("Starting MRVL backend")

	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		logger.L.WithError(err).Fatal("PostgreSQL connection failed")
	}
	defer pool.Close()
	logger.L.Info("PostgreSQL connected")

	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		logger.L.WithError(err).Fatal("Redis connection failed")
	}
	defer redisClients.Close()
	logger.L.Info("Redis connected")

	if err := database.RunMigrations(pool, "migrations"); err != nil {
		logger.L.WithError(err).Fatal("Database migration failed")
	}
	logger.L.Info("Database migrations applied")

	// Repositories
	userRepo := repository.NewUserRepo(pool)
	articleRepo := repository.NewArticleRepo(pool)
	mentionRepo := repository.NewMentionRepo(pool)
	esportsRepo := repository.NewEsportsRepo(pool)
	forumRepo := repository.NewForumRepo(pool)

	// Services
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	vlrCache := cache.New(time.Duration(cfg.VLRCacheTTLMinutes)*time.Minute, cfg.VLRCacheMaxEntries)
	vlrService := services.NewVLRService(cfg.VLRAPIBaseURL, vlrCache)
	youtubeService := services.NewYouTubeService()
	authService := services.NewAuthService(userRepo, redisClients.Queue, jwtAuth)
	newsService := services.NewNewsService(articleRepo, redisClients.Queue, cfg.EmbedParentDomain)
	mentionService := services.NewMentionService(mentionRepo)
	esportsService := services.NewEsportsService(esportsRepo, redisClients.PubSub)
	forumService := services.NewForumService(forumRepo, cfg.EmbedParentDomain)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	newsHandler := handlers.NewNewsHandler(newsService)
	embedHandler := handlers.NewEmbedHandler(cfg.EmbedParentDomain)
	vlrHandler := handlers.NewVLRHandler(vlrService)
	mentionHandler := handlers.NewMentionHandler(mentionService)
	esportsHandler := handlers.NewEsportsHandler(esportsService)
	forumHandler := handlers.NewForumHandler(forumService)

	// Enrichment worker pool
	workerPool := worker.NewPool(redisClients.Queue, youtubeService, vlrService, articleRepo, cfg.WorkerCount)
	workerPool.Start()

	// Live score fan-out
	wsHub := websocket.NewHub(redisClients.PubSub)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go wsHub.Run(hubCtx)
	logger.L.Info("WebSocket hub started")

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	r := router.New(
		jwtAuth,
		authHandler,
		newsHandler,
		embedHandler,
		vlrHandler,
		mentionHandler,
		esportsHandler,
		forumHandler,
		wsHub,
		authLimiter,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.L.Info("Shutting down")
		workerPool.Stop()
		authLimiter.Stop()
		hubCancel()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.L.WithField("port", cfg.Port).Info("MRVL backend ready")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.L.WithError(err).Fatal("Server error")
	}
}
