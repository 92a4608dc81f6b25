// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/color3/backend/internal/integration/entrypoint/controller"
	"github.com/color3/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	colorController      *controller.ColorController
	submissionController *controller.SubmissionController
	triColorController   *controller.TriColorController
	aggregateController  *controller.AggregateController
	submissionLimiter    *middleware.RateLimiter
	frontendURL          string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	colorController *controller.ColorController,
	submissionController *controller.SubmissionController,
	triColorController *controller.TriColorController,
	aggregateController *controller.AggregateController,
	submissionLimiter *middleware.RateLimiter,
	frontendURL string,
) *Router {
	return &Router{
		healthController:     healthController,
		colorController:      colorController,
		submissionController: submissionController,
		triColorController:   triColorController,
		aggregateController:  aggregateController,
		submissionLimiter:    submissionLimiter,
		frontendURL:          frontendURL,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	if r.frontendURL != "" {
		r.engine.Use(middleware.CORS(r.frontendURL))
	}

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.colorController != nil {
			colors := v1.Group("/colors")
			{
				colors.GET("/families", r.colorController.ListFamilies)
				colors.GET("/classify", r.colorController.Classify)
			}
		}

		if r.submissionController != nil {
			writeLimit := r.writeLimit()
			submissions := v1.Group("/submissions")
			{
				submissions.POST("", writeLimit, r.submissionController.Create)
				submissions.GET("/:id", r.submissionController.Get)
				submissions.PUT("/:id", writeLimit, r.submissionController.Update)
				submissions.GET("/:id/tricolor-days", r.submissionController.TriColorDays)
			}
		}

		if r.triColorController != nil {
			v1.POST("/tricolor-days", r.triColorController.Find)
		}

		if r.aggregateController != nil {
			agg := v1.Group("/aggregate")
			{
				agg.GET("", r.aggregateController.Get)
				agg.GET("/tricolor-days", r.aggregateController.TriColorDays)
				agg.POST("/snapshots", r.aggregateController.CreateSnapshot)
				agg.GET("/snapshots/latest", r.aggregateController.LatestSnapshot)
			}
		}
	}
}

func (r *Router) writeLimit() gin.HandlerFunc {
	if r.submissionLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.submissionLimiter.Middleware()
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
