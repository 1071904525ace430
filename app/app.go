// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"snapgram-api/config"
	"snapgram-api/db"
	"snapgram-api/handler"
	"snapgram-api/logger"
	"snapgram-api/repository"
	"snapgram-api/router"
	"snapgram-api/service"
	"syscall"
	"time"
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

	if err := db.Migrate(database); err != nil {
		logger.Log.Fatalf("Error applying database migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	mailer := service.NewSMTPMailer()
	r := buildRouter(database, redisClient, mailer)

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

// buildRouter wires all layers together. Repositories get the shared
// database handle, services get repositories and collaborators, handlers get
// services; nothing reaches for a global connection.
func buildRouter(database *sql.DB, cache service.ICacheClient, mailer service.Mailer) http.Handler {
	userRepo := repository.NewUserRepository(database)
	verifRepo := repository.NewVerificationRepository(database)

	tokenService := service.NewTokenService()
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, verifRepo, mailer, cache)
	verificationService := service.NewVerificationService(database, userRepo, verifRepo, mailer, cache)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	verificationHandler := handler.NewVerificationHandler(verificationService)

	return router.NewRouter(userHandler, authHandler, verificationHandler)
}

// TestApp bundles the wired router with its database handle for the
// integration-style test suites.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp wires the full stack around the supplied collaborators so tests
// can drive real HTTP requests through the router.
func NewTestApp(database *sql.DB, cache service.ICacheClient, mailer service.Mailer) *TestApp {
	return &TestApp{
		DB:     database,
		Router: buildRouter(database, cache, mailer),
	}
}
