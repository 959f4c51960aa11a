package auth

import (
	"bandacious/internal/shared/config"
	"bandacious/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all auth routes
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/login", controller.Login)
		auth.POST("/refresh", controller.RefreshToken)

		// Protected routes (authentication required)
		protected := auth.Group("")
		protected.Use(middleware.JWTAuthWithConfig(cfg))
		{
			protected.GET("/me", controller.GetMe)
		}
	}
}
