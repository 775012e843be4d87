package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"org-tenancy-backend/internal/api/routes"
	"org-tenancy-backend/internal/config"
	"org-tenancy-backend/internal/logger"
	"org-tenancy-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "org-tenancy-backend/docs" // This is needed for swag
)

//	@title			Organization Tenancy Backend API
//	@version		1.0
//	@description	Registers organizations with an admin user and a dedicated tenant collection, and lets the admin rename or delete the organization.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

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

	logger.Setup(cfg.LogLevel, os.Stdout)

	if cfg.UsesDefaultSecret() {
		logrus.Warn("JWT_SECRET is the development default; set a real secret before deploying")
	}

	// Connect the store
	connectCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.MongoConnectTimeoutSec+5)*time.Second)
	repos, closeStore, err := repository.Open(connectCtx, cfg)
	cancel()
	if err != nil {
		logrus.Fatal("Failed to initialize store: ", err)
	}
	logrus.WithField("driver", cfg.StoreDriver).Info("Store connected")

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(repos, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if err := closeStore(ctx); err != nil {
		logrus.WithError(err).Error("Failed to close store")
	}
	logrus.Info("Server stopped")
}
