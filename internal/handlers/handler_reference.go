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

// referenceHandler handles HTTP requests for the read-only reference catalogs.
type referenceHandler struct {
	referenceService portssvc.ReferenceReaderSvc
}

func newReferenceHandler(rs portssvc.ReferenceReaderSvc) *referenceHandler {
	return &referenceHandler{
		referenceService: rs,
	}
}

// registerReferenceRoutes registers routes related to reference data.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceReaderSvc) {
	h := newReferenceHandler(referenceService)

	countries := rg.Group("/countries")
	{
		countries.GET("", h.listCountries)
		countries.GET("/:code", h.getCountryByCode)
	}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}

	rg.GET("/product-categories", h.listProductCategories)
}

// listCountries godoc
// @Summary List all supported countries
// @Description Retrieves the destination country catalog with tax rates and de-minimis thresholds
// @Tags reference
// @Produce  json
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} map[string]string "Failed to list countries"
// @Router /countries [get]
func (h *referenceHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	countries, err := h.referenceService.ListCountries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list countries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// getCountryByCode godoc
// @Summary Get a country by code
// @Description Retrieves details for a specific country by its 2-letter code
// @Tags reference
// @Produce  json
// @Param   code path string true "Country Code (ISO 3166-1 alpha-2)"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to retrieve country"
// @Router /countries/{code} [get]
func (h *referenceHandler) getCountryByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	country, err := h.referenceService.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found", slog.String("country_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to get country from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve country"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// listCurrencies godoc
// @Summary List all supported currencies
// @Description Retrieves a list of all available currencies with exchange rates to the unit of account
// @Tags reference
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *referenceHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.referenceService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags reference
// @Produce  json
// @Param   code path string true "Currency Code (ISO 4217)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{code} [get]
func (h *referenceHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.referenceService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.String("currency_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listProductCategories godoc
// @Summary List all product categories
// @Description Retrieves the HS code catalog with duty rate ranges
// @Tags reference
// @Produce  json
// @Success 200 {array} dto.ProductCategoryResponse
// @Failure 500 {object} map[string]string "Failed to list product categories"
// @Router /product-categories [get]
func (h *referenceHandler) listProductCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.referenceService.ListProductCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list product categories from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list product categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductCategoryResponse(categories))
}
