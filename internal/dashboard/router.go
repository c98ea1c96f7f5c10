package dashboard

import (
	"queuesmart/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup, controller *Controller, session middleware.SessionOptions) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.Session(session))
	{
		dashboard.GET("", controller.GetDashboard)              // GET /api/v1/dashboard
		dashboard.PATCH("/form", controller.UpdateForm)         // PATCH /api/v1/dashboard/form
		dashboard.POST("/predict", controller.Predict)          // POST /api/v1/dashboard/predict
		dashboard.POST("/locate", controller.Locate)            // POST /api/v1/dashboard/locate
		dashboard.POST("/unsupported", controller.Unsupported) // POST /api/v1/dashboard/unsupported
	}
}
