package home

import "github.com/gin-gonic/gin"

// SetupPageRoutes mounts the server-rendered homepage at the site root.
func SetupPageRoutes(engine *gin.Engine, controller Controller) {
	engine.GET("/", controller.Index)
}

func SetupHomeRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/home", controller.GetHome) // GET /api/v1/home - Homepage view model
}
