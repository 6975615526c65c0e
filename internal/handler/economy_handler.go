package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"economics-api/internal/currencies"
	"economics-api/internal/service"
	"economics-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type EconomyHandler struct {
	usecase usecase.EconomyUsecase
	logger  *logrus.Logger
}

func NewEconomyHandler(usecase usecase.EconomyUsecase, logger *logrus.Logger) *EconomyHandler {
	return &EconomyHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Register wires every API route onto the engine. Middleware and the
// /metrics endpoint are attached by the caller.
func (h *EconomyHandler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/countries", h.GetCountries)
	r.GET("/currencies", h.GetCurrencies)
	r.GET("/indicators/:country", h.GetCountryIndicators)
	r.GET("/currency-pairs/:base/:quote", h.GetCurrencyPair)
	r.GET("/interest-rates", h.GetInterestRates)
	r.GET("/gdp-growth", h.GetGDPGrowth)
	r.GET("/inflation", h.GetInflationRates)
	r.GET("/unemployment", h.GetUnemploymentRates)
	r.GET("/all-currency-pairs", h.GetAllCurrencyPairs)
	r.GET("/health", h.HealthCheck)
}

func (h *EconomyHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Trading Economics API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"countries":      "/countries",
			"indicators":     "/indicators/{country}",
			"currency_pairs": "/currency-pairs/{base}/{quote}",
			"interest_rates": "/interest-rates",
			"gdp_growth":     "/gdp-growth",
			"inflation":      "/inflation",
			"unemployment":   "/unemployment",
		},
	})
}

func (h *EconomyHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Countries(c.Request.Context()))
}

func (h *EconomyHandler) GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, currencies.Codes())
}

func (h *EconomyHandler) GetCountryIndicators(c *gin.Context) {
	country := c.Param("country")

	data, err := h.usecase.CountryIndicators(c.Request.Context(), country)
	if err != nil {
		h.logger.WithError(err).Errorf("Failed to fetch indicators for %s", country)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error fetching data for %s", country)})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *EconomyHandler) GetCurrencyPair(c *gin.Context) {
	base := c.Param("base")
	quote := c.Param("quote")

	pair, err := h.usecase.CurrencyPair(c.Request.Context(), base, quote)
	if err != nil {
		if errors.Is(err, usecase.ErrCurrencyNotSupported) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		h.logger.WithError(err).Errorf("Failed to fetch currency pair %s/%s", base, quote)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching currency pair data"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *EconomyHandler) GetInterestRates(c *gin.Context) {
	h.listIndicator(c, service.IndicatorInterestRate)
}

func (h *EconomyHandler) GetGDPGrowth(c *gin.Context) {
	h.listIndicator(c, service.IndicatorGDPGrowth)
}

func (h *EconomyHandler) GetInflationRates(c *gin.Context) {
	h.listIndicator(c, service.IndicatorInflation)
}

func (h *EconomyHandler) GetUnemploymentRates(c *gin.Context) {
	h.listIndicator(c, service.IndicatorUnemployment)
}

func (h *EconomyHandler) GetAllCurrencyPairs(c *gin.Context) {
	pairs, err := h.usecase.AllCurrencyPairs(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch currency pair sweep")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching currency pair data"})
		return
	}

	c.JSON(http.StatusOK, pairs)
}

func (h *EconomyHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "healthy",
		"trading_economics_api": h.usecase.ProviderStatus(c.Request.Context()),
		"timestamp":             time.Now().Format(time.RFC3339),
	})
}

// listIndicator serves the shared shape of the four indicator list
// endpoints: optional repeated "countries" query parameter, absent
// results dropped from the response.
func (h *EconomyHandler) listIndicator(c *gin.Context, indicator string) {
	countries := c.QueryArray("countries")

	results, err := h.usecase.IndicatorForCountries(c.Request.Context(), indicator, countries)
	if err != nil {
		h.logger.WithError(err).Errorf("Failed to fetch %s for countries %v", indicator, countries)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error fetching %s data", indicator)})
		return
	}

	c.JSON(http.StatusOK, results)
}
