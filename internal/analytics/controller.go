package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"queuesmart/internal/shared/utils/response"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetSeries(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetSeries godoc
// @Summary Simulated queue occupancy for today
// @Description Falls back to a fixed three-point series when generation fails
// @Tags analytics
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /analytics/series [get]
func (ctrl *controller) GetSeries(c *gin.Context) {
	series := ctrl.service.Series(c.Request.Context())

	message := "Queue series retrieved successfully"
	if series.Fallback {
		message = "Queue series unavailable, showing sample data"
	}
	response.Success(c, http.StatusOK, message, series)
}
