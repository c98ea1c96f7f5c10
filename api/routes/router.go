// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"queuesmart/internal/analytics"
	"queuesmart/internal/canteens"
	"queuesmart/internal/dashboard"
	"queuesmart/internal/predictions"
	"queuesmart/internal/shared/config"
	"queuesmart/internal/shared/middleware"
	"queuesmart/internal/telemetry"
	"queuesmart/pkg/cache"
	"queuesmart/pkg/llm"
	"queuesmart/pkg/logger"
	"queuesmart/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the backends shared by every route group
type Dependencies struct {
	Cache     cache.Service // nil when Redis is disabled
	Responder llm.Responder
	Publisher telemetry.Publisher
	Store     dashboard.Store
	Logger    *logger.Logger
}

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	deps      Dependencies
	directory *canteens.Directory

	predictionService predictions.Service
	analyticsService  analytics.Service
	dashboardService  dashboard.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, deps Dependencies) *Router {
	if deps.Publisher == nil {
		deps.Publisher = telemetry.Noop{}
	}
	if deps.Store == nil {
		deps.Store = dashboard.NewMemoryStore(cfg.Session.TTL)
	}

	directory := canteens.DefaultDirectory()
	predictionService := predictions.NewService(deps.Responder, deps.Publisher, deps.Logger)
	analyticsService := analytics.NewService(deps.Responder, directory, deps.Logger)

	return &Router{
		config:            cfg,
		deps:              deps,
		directory:         directory,
		predictionService: predictionService,
		analyticsService:  analyticsService,
		dashboardService: dashboard.NewService(deps.Store, directory, predictionService, analyticsService, deps.Logger, dashboard.Options{
			GeolocationTimeout: cfg.Session.GeolocationTimeout,
		}),
	}
}

// Wait blocks until background analytics fetches and queued prediction
// events have finished. Shutdown calls it before closing the publisher.
func (r *Router) Wait() {
	r.dashboardService.Wait()
	r.predictionService.Wait()
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Page and API docs
	r.setupWebRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCanteenRoutes(api)
		r.setupPredictionRoutes(api)
		r.setupAnalyticsRoutes(api)
		r.setupDashboardRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if r.deps.Cache != nil {
			if err := r.deps.Cache.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": time.Now(),
					"service":   "queuesmart",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "queuesmart",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"model":         r.config.LLM.Model,
			"session_store": r.sessionStoreName(),
			"redis":         r.deps.Cache != nil,
			"kafka":         r.config.Kafka.Enabled,
			"timestamp":     time.Now(),
		})
	})
}

func (r *Router) sessionStoreName() string {
	if _, ok := r.deps.Store.(*dashboard.RedisStore); ok {
		return "redis"
	}
	return "memory"
}

// setupWebRoutes serves the dashboard page and Swagger UI
func (r *Router) setupWebRoutes(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})

	engine.GET("/swagger/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}

// setupCanteenRoutes configures the canteen directory routes
func (r *Router) setupCanteenRoutes(rg *gin.RouterGroup) {
	canteenService := canteens.NewService(r.directory, r.deps.Logger)
	canteenController := canteens.NewController(canteenService)

	canteens.SetupCanteenRoutes(rg, canteenController)
}

// setupPredictionRoutes configures the stateless prediction route
func (r *Router) setupPredictionRoutes(rg *gin.RouterGroup) {
	predictions.SetupPredictionRoutes(rg, predictions.NewController(r.predictionService))
}

// setupAnalyticsRoutes configures the queue series route
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics.SetupAnalyticsRoutes(rg, analytics.NewController(r.analyticsService))
}

// setupDashboardRoutes configures the session-backed dashboard routes
func (r *Router) setupDashboardRoutes(rg *gin.RouterGroup) {
	dashboardController := dashboard.NewController(r.dashboardService)

	dashboard.SetupDashboardRoutes(rg, dashboardController, middleware.SessionOptions{
		CookieName: r.config.Session.CookieName,
		MaxAge:     int(r.config.Session.TTL.Seconds()),
		Secure:     r.config.Session.CookieSecure,
	})
}
