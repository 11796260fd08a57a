package handlers

import (
	portssvc "github.com/crossborder/landed_cost_app/internal/core/ports/services"
	"github.com/crossborder/landed_cost_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	v1Middleware ...gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, services, v1Middleware...)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	v1Middleware ...gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", v1Middleware...)

	// Delegate route registration to specific handlers, passing required services
	registerLandedCostRoutes(v1, services.LandedCost)
	registerInspectionRoutes(v1, services.Inspection)
	registerReferenceRoutes(v1, services.Reference)
	registerScenarioRoutes(v1, services.Scenario)
}
