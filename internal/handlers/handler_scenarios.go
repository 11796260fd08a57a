package handlers

import (
	"net/http"

	portssvc "github.com/crossborder/landed_cost_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// scenarioHandler serves the static documentation catalogs.
type scenarioHandler struct {
	scenarioService portssvc.ScenarioSvc
}

func newScenarioHandler(ss portssvc.ScenarioSvc) *scenarioHandler {
	return &scenarioHandler{
		scenarioService: ss,
	}
}

// registerScenarioRoutes registers routes related to documentation scenarios.
func registerScenarioRoutes(rg *gin.RouterGroup, scenarioService portssvc.ScenarioSvc) {
	h := newScenarioHandler(scenarioService)

	scenarios := rg.Group("/scenarios")
	{
		scenarios.GET("/errors", h.listErrorScenarios)
		scenarios.GET("/landed-costs", h.listLandedCostScenarios)
		scenarios.GET("/troubleshooting", h.listTroubleshootingEntries)
	}
}

// listErrorScenarios godoc
// @Summary List common error scenarios
// @Description Static reference catalog of known API errors and how to resolve them
// @Tags scenarios
// @Produce  json
// @Success 200 {array} domain.ErrorScenario
// @Router /scenarios/errors [get]
func (h *scenarioHandler) listErrorScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, h.scenarioService.ListErrorScenarios(c.Request.Context()))
}

// listLandedCostScenarios godoc
// @Summary List worked landed cost examples
// @Description Static reference catalog of example calculations and their expected results
// @Tags scenarios
// @Produce  json
// @Success 200 {array} domain.LandedCostScenario
// @Router /scenarios/landed-costs [get]
func (h *scenarioHandler) listLandedCostScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, h.scenarioService.ListLandedCostScenarios(c.Request.Context()))
}

// listTroubleshootingEntries godoc
// @Summary List troubleshooting guide entries
// @Description Static quick-fix guide for commonly reported integration issues
// @Tags scenarios
// @Produce  json
// @Success 200 {array} domain.TroubleshootingEntry
// @Router /scenarios/troubleshooting [get]
func (h *scenarioHandler) listTroubleshootingEntries(c *gin.Context) {
	c.JSON(http.StatusOK, h.scenarioService.ListTroubleshootingEntries(c.Request.Context()))
}
