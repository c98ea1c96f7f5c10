package predictions

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

// CreatePrediction godoc
// @Summary Predict the queue at a canteen
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Canteen and time of day"
// @Success 200 {object} response.StandardApiResponse
// @Failure 400 {object} response.StandardApiResponse
// @Failure 502 {object} response.StandardApiResponse
// @Router /predictions [post]
func (c *Controller) CreatePrediction(ctx *gin.Context) {
	var req PredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	input := Request{Canteen: req.Canteen, Time: req.Time}
	prediction, err := c.service.Predict(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(ctx, http.StatusBadRequest, ValidationMessage, err.Error())
			return
		}
		_ = ctx.Error(err)
		response.Error(ctx, http.StatusBadGateway, FailureMessage, err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Prediction generated successfully", NewPredictionResponse(input, prediction))
}
