package dashboard

import (
	"net/http"

	"queuesmart/internal/shared/middleware"
	"queuesmart/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) respond(ctx *gin.Context, snapshot *Snapshot, err error) {
	if err != nil {
		_ = ctx.Error(err)
		response.Error(ctx, http.StatusInternalServerError, "Failed to update dashboard", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Dashboard retrieved successfully", snapshot)
}

// GetDashboard godoc
// @Summary Current dashboard state for the session
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /dashboard [get]
func (c *Controller) GetDashboard(ctx *gin.Context) {
	snapshot, err := c.service.Open(ctx.Request.Context(), middleware.GetSessionID(ctx))
	c.respond(ctx, snapshot, err)
}

// UpdateForm godoc
// @Summary Edit the canteen or time field
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body FormRequest true "Changed fields"
// @Success 200 {object} response.StandardApiResponse
// @Failure 400 {object} response.StandardApiResponse
// @Router /dashboard/form [patch]
func (c *Controller) UpdateForm(ctx *gin.Context) {
	var req FormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	snapshot, err := c.service.SetForm(ctx.Request.Context(), middleware.GetSessionID(ctx), FormUpdate{
		Canteen: req.Canteen,
		Time:    req.Time,
	})
	c.respond(ctx, snapshot, err)
}

// Predict godoc
// @Summary Submit the form
// @Description Validation and prediction failures are reported in the returned state
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /dashboard/predict [post]
func (c *Controller) Predict(ctx *gin.Context) {
	snapshot, err := c.service.Submit(ctx.Request.Context(), middleware.GetSessionID(ctx))
	c.respond(ctx, snapshot, err)
}

// Locate godoc
// @Summary Use the browser location
// @Description Send either latitude and longitude or the browser error_code
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body LocateRequest true "Position fix or error code"
// @Success 200 {object} response.StandardApiResponse
// @Failure 400 {object} response.StandardApiResponse
// @Router /dashboard/locate [post]
func (c *Controller) Locate(ctx *gin.Context) {
	var req LocateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	locator, ok := req.Locator()
	if !ok {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", "latitude and longitude or error_code required")
		return
	}

	snapshot, err := c.service.Locate(ctx.Request.Context(), middleware.GetSessionID(ctx), locator)
	c.respond(ctx, snapshot, err)
}

// Unsupported godoc
// @Summary Report a browser without geolocation
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /dashboard/unsupported [post]
func (c *Controller) Unsupported(ctx *gin.Context) {
	snapshot, err := c.service.Unsupported(ctx.Request.Context(), middleware.GetSessionID(ctx))
	c.respond(ctx, snapshot, err)
}
