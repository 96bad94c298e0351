package handlers

import (
	"net/http"

	"marlink_backend/internal/middleware"
	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExchangeRateHandler struct {
	*BaseHandler
	rateService services.ExchangeRateService
}

func NewExchangeRateHandler(base *BaseHandler, rateService services.ExchangeRateService) *ExchangeRateHandler {
	return &ExchangeRateHandler{
		BaseHandler: base,
		rateService: rateService,
	}
}

func (h *ExchangeRateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// The public lookup is flag-gated in the service, not by auth.
	rg.GET("/exchange-rates/effective-public/:date", h.GetEffectivePublic)

	admin := rg.Group("/exchange-rates")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Upsert)
		admin.GET("", h.List)
		admin.GET("/effective/:date", h.GetEffective)
		admin.GET("/:date", h.GetByDate)
	}
}

// Upsert godoc
// @Summary Insert or update the rate for a date
// @Tags exchange-rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RateUpsertRequest true "Date and rate"
// @Success 200 {object} models.ExchangeRate
// @Router /exchange-rates [post]
func (h *ExchangeRateHandler) Upsert(c *gin.Context) {
	var req dto.RateUpsertRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.rateService.Upsert(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *ExchangeRateHandler) List(c *gin.Context) {
	records, err := h.rateService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ExchangeRateHandler) GetByDate(c *gin.Context) {
	record, err := h.rateService.GetByDate(c.Param("date"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetEffective godoc
// @Summary Get the rate effective on a date (latest at or before it)
// @Tags exchange-rates
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.EffectiveRateResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /exchange-rates/effective/{date} [get]
func (h *ExchangeRateHandler) GetEffective(c *gin.Context) {
	result, err := h.rateService.GetEffective(c.Param("date"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ExchangeRateHandler) GetEffectivePublic(c *gin.Context) {
	result, err := h.rateService.GetEffectivePublic(c.Param("date"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
