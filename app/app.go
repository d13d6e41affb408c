// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"drone-spot-api/config"
	"drone-spot-api/db"
	"drone-spot-api/handler"
	"drone-spot-api/logger"
	"drone-spot-api/repository"
	"drone-spot-api/router"
	"drone-spot-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	r, sweeper, err := buildRouter(database, redisClient)
	if err != nil {
		logger.Log.Fatalf("Error wiring application: %v", err)
	}

	// The sweeper owns its own goroutine; requests never wait on it.
	sweeper.Start()
	defer sweeper.Stop()

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// buildRouter wires every layer together. Repositories wrap the stores,
// services own the business rules, handlers shape HTTP.
func buildRouter(database *sql.DB, redisClient *redis.Client) (http.Handler, *service.Sweeper, error) {
	cfg := &config.AppConfig

	codec, err := service.NewTokenCodec(service.TokenCodecConfig{
		AccessSecret:  cfg.JWT.AccessSecretKey,
		AccessTTL:     cfg.AccessTTL(),
		RefreshSecret: cfg.JWT.RefreshSecretKey,
		RefreshTTL:    cfg.RefreshTTL(),
	}, nil)
	if err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	spotRepo := repository.NewSpotRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	followRepo := repository.NewFollowRepository(database)
	courseRepo := repository.NewCourseRepository(database)
	termRepo := repository.NewTermRepository(database)

	authService := service.NewAuthService(
		userRepo, sessionRepo, codec, cfg.Security.PasswordSalt, cfg.Security.BcryptCost)
	userService := service.NewUserService(userRepo, followRepo, reviewRepo, authService)
	spotService := service.NewSpotService(spotRepo, redisClient)
	reviewService := service.NewReviewService(reviewRepo)
	followService := service.NewFollowService(followRepo)
	courseService := service.NewCourseService(courseRepo)
	termService := service.NewTermService(termRepo)

	authMW := handler.NewAuthMiddleware(codec)
	r := router.NewRouter(
		authMW,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewSpotHandler(spotService),
		handler.NewReviewHandler(reviewService),
		handler.NewFollowHandler(followService),
		handler.NewCourseHandler(courseService),
		handler.NewTermHandler(termService),
	)

	sweeper := service.NewSweeper(sessionRepo, cfg.SweepInterval(), nil)

	return r, sweeper, nil
}

// TestApp exposes the wired router and raw connections for integration
// tests.
type TestApp struct {
	Router  http.Handler
	Sweeper *service.Sweeper
	DB      *sql.DB
	Redis   *redis.Client
}

func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	r, sweeper, err := buildRouter(database, redisClient)
	if err != nil {
		logger.Log.Fatalf("Error wiring test application: %v", err)
	}
	return &TestApp{Router: r, Sweeper: sweeper, DB: database, Redis: redisClient}
}
