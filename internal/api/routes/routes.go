package routes

import (
	"fmt"

	"org-tenancy-backend/internal/api/handlers"
	"org-tenancy-backend/internal/api/middleware"
	"org-tenancy-backend/internal/auth"
	"org-tenancy-backend/internal/config"
	"org-tenancy-backend/internal/repository"
	"org-tenancy-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(repos *repository.Set, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	organizationService := service.NewOrganizationService(repos.Organizations, repos.Users, repos.Tenants, validator)
	adminService := service.NewAdminService(repos.Users, authService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(repos.Health, cfg.StoreDriver)
	adminHandler := handlers.NewAdminHandler(adminService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/admin/login", adminHandler.Login)

	org := router.Group("/org")
	{
		org.POST("/create", organizationHandler.CreateOrganization)
		org.GET("/get", organizationHandler.GetOrganization)

		protected := org.Group("", authMiddleware.RequireAuth())
		protected.PUT("/update", organizationHandler.UpdateOrganization)
		protected.DELETE("/delete", organizationHandler.DeleteOrganization)
	}

	return router, nil
}
