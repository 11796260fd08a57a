package main

import (
	"log/slog"
	"os"

	"github.com/crossborder/landed_cost_app/internal/core/services"
	"github.com/crossborder/landed_cost_app/internal/dto"
	"github.com/crossborder/landed_cost_app/internal/handlers"
	"github.com/crossborder/landed_cost_app/internal/middleware"
	"github.com/crossborder/landed_cost_app/internal/platform/config"
	"github.com/crossborder/landed_cost_app/internal/repositories/static"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/crossborder/landed_cost_app/internal/core/ports/services"
)

// @title Landed Cost API
// @version 1.0
// @description Landed cost estimation and request inspection backend.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Monetary amounts serialize as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build the immutable reference data store; it is shared by every
	// request without coordination.
	store, err := static.NewDefaultReferenceStore()
	if err != nil {
		logger.Error("Failed to build reference data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Reference data store initialized.")

	classifier := services.NewDutyClassifier(store, cfg.DefaultDutyRate)
	serviceContainer := &portssvc.ServiceContainer{
		LandedCost: services.NewLandedCostService(store, classifier),
		Inspection: services.NewInspectionService(store),
		Reference:  services.NewReferenceService(store),
		Scenario:   services.NewScenarioService(),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memorystore.NewStore(), rate)

	handlers.RegisterRoutes(r, cfg, serviceContainer, middleware.RateLimit(limiterInstance))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
