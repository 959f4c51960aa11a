package discovery

import "github.com/gin-gonic/gin"

func SetupDiscoveryRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.GET("", controller.ListEvents)   // GET /api/v1/events - Filtered event search
		events.GET("/:id", controller.GetEvent) // GET /api/v1/events/:id - Event with venue and artist
	}

	router.GET("/artists", controller.ListArtists) // GET /api/v1/artists?q=
	router.GET("/venues", controller.ListVenues)   // GET /api/v1/venues?q=&distance=
	router.GET("/genres", controller.ListGenres)   // GET /api/v1/genres

	popular := router.Group("/popular")
	{
		popular.GET("/venues", controller.PopularVenues)   // GET /api/v1/popular/venues?limit=
		popular.GET("/artists", controller.PopularArtists) // GET /api/v1/popular/artists?limit=
	}
}
