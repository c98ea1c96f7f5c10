package canteens

import (
	"errors"
	"net/http"

	"queuesmart/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListCanteens godoc
// @Summary List canteens
// @Tags canteens
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /canteens [get]
func (c *Controller) ListCanteens(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, "Canteens retrieved successfully", c.service.List(ctx.Request.Context()))
}

// NearestCanteen godoc
// @Summary Resolve the nearest canteen to a coordinate
// @Tags canteens
// @Produce json
// @Param latitude query number true "Latitude in degrees"
// @Param longitude query number true "Longitude in degrees"
// @Success 200 {object} response.StandardApiResponse
// @Failure 400 {object} response.StandardApiResponse
// @Router /canteens/nearest [get]
func (c *Controller) NearestCanteen(ctx *gin.Context) {
	var query NearestQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := c.service.Nearest(ctx.Request.Context(), *query.Latitude, *query.Longitude)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidInput) {
			statusCode = http.StatusUnprocessableEntity
		}
		response.Error(ctx, statusCode, "Failed to resolve nearest canteen", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Nearest canteen resolved successfully", result)
}
