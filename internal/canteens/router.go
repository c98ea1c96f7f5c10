package canteens

import "github.com/gin-gonic/gin"

func SetupCanteenRoutes(rg *gin.RouterGroup, controller *Controller) {
	canteens := rg.Group("/canteens")
	{
		canteens.GET("", controller.ListCanteens)           // GET /api/v1/canteens
		canteens.GET("/nearest", controller.NearestCanteen) // GET /api/v1/canteens/nearest
	}
}
