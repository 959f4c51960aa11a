package calendar

import "github.com/gin-gonic/gin"

func SetupCalendarRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.GET("/:id/calendar.ics", controller.DownloadICS)       // GET /api/v1/events/:id/calendar.ics - iCalendar download
		events.GET("/:id/calendar-link", controller.GetCalendarLink) // GET /api/v1/events/:id/calendar-link - External calendar link
	}
}
