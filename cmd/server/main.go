package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-backend/internal/auth"
	"blog-backend/internal/config"
	"blog-backend/internal/handler"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
	"blog-backend/internal/middleware"
	"blog-backend/internal/repository"
	"blog-backend/internal/service"
	"blog-backend/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	relationRepo := repository.NewPostgresRelationRepository(pool)

	// Initialize validator and token manager
	v := validator.NewValidator()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize services
	aggregates := service.NewAggregateMaintainer(articleRepo)
	relationService := service.NewRelationService(relationRepo, aggregates)
	viewService := service.NewViewService(userRepo, relationService)
	userService := service.NewUserService(userRepo, v)
	articleService := service.NewArticleService(
		articleRepo,
		userRepo,
		service.NewSlugAssigner(),
		v,
		cfg.SlugMaxAttempts,
	)
	commentService := service.NewCommentService(commentRepo, articleRepo, v)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, tokens)
	profileHandler := handler.NewProfileHandler(userService, relationService, viewService)
	articleHandler := handler.NewArticleHandler(articleService, relationService, viewService)
	commentHandler := handler.NewCommentHandler(commentService, viewService)
	tagHandler := handler.NewTagHandler(articleService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	// API routes
	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/login", userHandler.Login)
		}

		user := api.Group("/user", requireAuth)
		{
			user.GET("", userHandler.CurrentUser)
			user.PUT("", userHandler.UpdateUser)
		}

		profiles := api.Group("/profiles")
		{
			profiles.GET("/:username", optionalAuth, profileHandler.GetProfile)
			profiles.POST("/:username/follow", requireAuth, profileHandler.Follow)
			profiles.DELETE("/:username/follow", requireAuth, profileHandler.Unfollow)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", optionalAuth, articleHandler.ListArticles)
			articles.GET("/feed", requireAuth, articleHandler.Feed)
			articles.POST("", requireAuth, articleHandler.CreateArticle)
			articles.GET("/:slug", optionalAuth, articleHandler.GetArticle)
			articles.PUT("/:slug", requireAuth, articleHandler.UpdateArticle)
			articles.DELETE("/:slug", requireAuth, articleHandler.DeleteArticle)
			articles.POST("/:slug/favorite", requireAuth, articleHandler.Favorite)
			articles.DELETE("/:slug/favorite", requireAuth, articleHandler.Unfavorite)
			articles.GET("/:slug/comments", optionalAuth, commentHandler.ListComments)
			articles.POST("/:slug/comments", requireAuth, commentHandler.AddComment)
			articles.DELETE("/:slug/comments/:id", requireAuth, commentHandler.DeleteComment)
		}

		api.GET("/tags", tagHandler.ListTags)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
