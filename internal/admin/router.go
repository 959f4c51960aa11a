package admin

import (
	"bandacious/internal/shared/config"
	"bandacious/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the catalog administration routes. All of them require an admin token.
func SetupAdminRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("/catalog/status", controller.GetCatalogStatus)
		admin.POST("/catalog/reload", controller.ReloadCatalog)
	}
}
