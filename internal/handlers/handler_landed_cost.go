package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crossborder/landed_cost_app/internal/apperrors"
	portssvc "github.com/crossborder/landed_cost_app/internal/core/ports/services"
	"github.com/crossborder/landed_cost_app/internal/dto"
	"github.com/crossborder/landed_cost_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// landedCostHandler handles HTTP requests related to landed cost calculations.
type landedCostHandler struct {
	landedCostService portssvc.LandedCostSvc
}

func newLandedCostHandler(lcs portssvc.LandedCostSvc) *landedCostHandler {
	return &landedCostHandler{
		landedCostService: lcs,
	}
}

// registerLandedCostRoutes registers routes related to landed cost calculations.
func registerLandedCostRoutes(rg *gin.RouterGroup, landedCostService portssvc.LandedCostSvc) {
	h := newLandedCostHandler(landedCostService)

	landedCosts := rg.Group("/landed-costs")
	{
		landedCosts.POST("", h.createLandedCost)
	}
}

// createLandedCost godoc
// @Summary Compute a landed cost estimate
// @Description Computes duties, taxes and the full cost breakdown for a shipment
// @Tags landed-costs
// @Accept  json
// @Produce  json
// @Param   shipment body dto.CreateLandedCostRequest true "Shipment details"
// @Success 201 {object} dto.LandedCostResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unknown country or currency"
// @Failure 500 {object} map[string]string "Failed to compute landed cost"
// @Router /landed-costs [post]
func (h *landedCostHandler) createLandedCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLandedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLandedCost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("destination_country", req.DestinationCountry),
		slog.String("currency_code", req.CurrencyCode),
		slog.Int("item_count", len(req.Items)),
	)
	logger.Info("Received request to compute landed cost")

	result, err := h.landedCostService.CreateLandedCost(c.Request.Context(), req.ToShipmentRequest())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCountry) || errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Landed cost request could not be resolved", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error computing landed cost", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute landed cost in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute landed cost"})
		}
		return
	}

	logger.Info("Landed cost computed successfully", slog.String("landed_cost_id", result.ID))
	c.JSON(http.StatusCreated, dto.ToLandedCostResponse(result))
}
