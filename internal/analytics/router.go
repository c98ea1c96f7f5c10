package analytics

import "github.com/gin-gonic/gin"

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/series", controller.GetSeries) // GET /api/v1/analytics/series
	}
}
