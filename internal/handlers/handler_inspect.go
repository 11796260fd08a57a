package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/crossborder/landed_cost_app/internal/core/ports/services"
	"github.com/crossborder/landed_cost_app/internal/dto"
	"github.com/crossborder/landed_cost_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inspectionHandler handles HTTP requests for the request inspectors.
type inspectionHandler struct {
	inspectionService portssvc.InspectionSvc
}

func newInspectionHandler(is portssvc.InspectionSvc) *inspectionHandler {
	return &inspectionHandler{
		inspectionService: is,
	}
}

// registerInspectionRoutes registers routes related to request inspection.
func registerInspectionRoutes(rg *gin.RouterGroup, inspectionService portssvc.InspectionSvc) {
	h := newInspectionHandler(inspectionService)

	inspect := rg.Group("/inspect")
	{
		inspect.POST("/request", h.inspectRequest)
		inspect.POST("/mutation", h.inspectMutation)
	}
}

// inspectRequest godoc
// @Summary Inspect a structured API request
// @Description Validates a raw JSON request body against the known error/warning taxonomy. Findings are returned as data; an invalid request still yields HTTP 200.
// @Tags inspect
// @Accept  json
// @Produce  json
// @Param   request body dto.InspectRequest true "Raw request to inspect"
// @Success 200 {object} dto.ValidationReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /inspect/request [post]
func (h *inspectionHandler) inspectRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InspectRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report := h.inspectionService.InspectStructuredRequest(c.Request.Context(), req.APIRequest)

	logger.Info("Structured request inspected",
		slog.Bool("valid", report.Valid),
		slog.Int("issue_count", len(report.Issues)),
		slog.Int("warning_count", len(report.Warnings)),
	)
	c.JSON(http.StatusOK, dto.ToValidationReportResponse(report))
}

// inspectMutation godoc
// @Summary Inspect a raw mutation body
// @Description Runs case-insensitive keyword presence checks over a raw mutation body. Best-effort heuristic, not a structural parse.
// @Tags inspect
// @Accept  json
// @Produce  json
// @Param   request body dto.InspectMutationRequest true "Raw mutation to inspect"
// @Success 200 {object} dto.ValidationReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /inspect/mutation [post]
func (h *inspectionHandler) inspectMutation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InspectMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InspectMutation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report := h.inspectionService.InspectMutationText(c.Request.Context(), req.Mutation)

	logger.Info("Mutation text inspected",
		slog.Bool("valid", report.Valid),
		slog.Int("issue_count", len(report.Issues)),
		slog.Int("warning_count", len(report.Warnings)),
	)
	c.JSON(http.StatusOK, dto.ToValidationReportResponse(report))
}
