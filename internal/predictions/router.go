package predictions

import "github.com/gin-gonic/gin"

func SetupPredictionRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/predictions", controller.CreatePrediction) // POST /api/v1/predictions
}
