package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callcenter-gamification-backend/internal/api/routes"
	"callcenter-gamification-backend/internal/cache"
	"callcenter-gamification-backend/internal/config"
	"callcenter-gamification-backend/internal/database"
	"callcenter-gamification-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "callcenter-gamification-backend/docs" // This is needed for swag
)

//	@title			Call Center Gamification API
//	@version		1.0
//	@description	Backend for call-center operators: call lifecycle, missions, achievements, reward store, rankings and manager goals.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{ConnectRetries: cfg.DBConnectRetries})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Ranking cache; an empty REDIS_URL runs without one
	rankingCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, running without ranking cache")
		rankingCache = cache.NewNoop()
	}
	defer rankingCache.Close()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	app, err := routes.SetupRoutes(db, cfg, rankingCache)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	if purged, err := app.AuthService.PurgeExpiredSessions(); err != nil {
		logrus.WithError(err).Warn("Failed to purge expired sessions")
	} else if purged > 0 {
		logrus.Infof("Purged %d expired sessions", purged)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
}
