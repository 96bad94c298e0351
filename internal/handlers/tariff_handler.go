package handlers

import (
	"net/http"

	"marlink_backend/internal/middleware"
	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TariffHandler serves the tariff page document and the structural
// editor operations behind the admin tariff UI.
type TariffHandler struct {
	*BaseHandler
	tariffService services.TariffService
}

func NewTariffHandler(base *BaseHandler, tariffService services.TariffService) *TariffHandler {
	return &TariffHandler{
		BaseHandler:   base,
		tariffService: tariffService,
	}
}

func (h *TariffHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tariffPage", h.GetPage)

	admin := rg.Group("/tariffPage")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.PUT("", h.ReplacePage)
		admin.PATCH("/exchange", h.UpdateExchange)
		admin.PATCH("/historical-rates", h.SetHistoricalRatesFlag)

		companies := admin.Group("/companies")
		{
			companies.POST("", h.AddCompany)
			companies.PUT("/:companyIdx", h.RenameCompany)
			companies.DELETE("/:companyIdx", h.DeleteCompany)

			tables := companies.Group("/:companyIdx/tables")
			{
				tables.POST("", h.AddTable)
				tables.DELETE("/:tableIdx", h.DeleteTable)
				tables.POST("/:tableIdx/rows", h.AddRow)
				tables.DELETE("/:tableIdx/rows/:rowIdx", h.DeleteRow)
				tables.POST("/:tableIdx/columns", h.AddColumn)
				tables.DELETE("/:tableIdx/columns/:colIdx", h.DeleteColumn)
				tables.PUT("/:tableIdx/size", h.ResizeTable)
			}
		}
	}
}

// GetPage godoc
// @Summary Get the whole tariff page document
// @Tags tariff
// @Produce json
// @Success 200 {object} dto.TariffPageResponse
// @Router /tariffPage [get]
func (h *TariffHandler) GetPage(c *gin.Context) {
	page, err := h.tariffService.GetPage()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ReplacePage godoc
// @Summary Replace the whole tariff page document
// @Tags tariff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TariffPageUpdateRequest true "New document"
// @Success 200 {object} dto.TariffPageResponse
// @Router /tariffPage [put]
func (h *TariffHandler) ReplacePage(c *gin.Context) {
	var req dto.TariffPageUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.tariffService.ReplacePage(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// UpdateExchange godoc
// @Summary Update the current exchange rate and date
// @Tags tariff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExchangeUpdateRequest true "Rate and date"
// @Success 200 {object} dto.TariffPageResponse
// @Router /tariffPage/exchange [patch]
func (h *TariffHandler) UpdateExchange(c *gin.Context) {
	var req dto.ExchangeUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.tariffService.UpdateExchange(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.tariffService.GetPage()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) SetHistoricalRatesFlag(c *gin.Context) {
	var req dto.HistoricalRatesFlagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.tariffService.SetHistoricalRatesFlag(*req.Allowed); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": *req.Allowed})
}

func (h *TariffHandler) AddCompany(c *gin.Context) {
	var req dto.AddCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.tariffService.AddCompany(req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) RenameCompany(c *gin.Context) {
	companyIdx, err := ParseParamInt(c, "companyIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RenameCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.tariffService.RenameCompany(companyIdx, req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) DeleteCompany(c *gin.Context) {
	companyIdx, err := ParseParamInt(c, "companyIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.tariffService.DeleteCompany(companyIdx)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) AddTable(c *gin.Context) {
	companyIdx, err := ParseParamInt(c, "companyIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.AddTableRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.tariffService.AddTable(companyIdx, req.Title)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) DeleteTable(c *gin.Context) {
	companyIdx, tableIdx, ok := h.tableCoords(c)
	if !ok {
		return
	}

	page, err := h.tariffService.DeleteTable(companyIdx, tableIdx)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) AddRow(c *gin.Context) {
	companyIdx, tableIdx, ok := h.tableCoords(c)
	if !ok {
		return
	}

	page, err := h.tariffService.AddRow(companyIdx, tableIdx)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) DeleteRow(c *gin.Context) {
	companyIdx, tableIdx, ok := h.tableCoords(c)
	if !ok {
		return
	}

	rowIdx, err := ParseParamInt(c, "rowIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.tariffService.DeleteRow(companyIdx, tableIdx, rowIdx)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) AddColumn(c *gin.Context) {
	companyIdx, tableIdx, ok := h.tableCoords(c)
	if !ok {
		return
	}

	var req dto.AddColumnRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.tariffService.AddColumn(companyIdx, tableIdx, req.Header)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) DeleteColumn(c *gin.Context) {
	companyIdx, tableIdx, ok := h.tableCoords(c)
	if !ok {
		return
	}

	colIdx, err := ParseParamInt(c, "colIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.tariffService.DeleteColumn(companyIdx, tableIdx, colIdx)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) ResizeTable(c *gin.Context) {
	companyIdx, tableIdx, ok := h.tableCoords(c)
	if !ok {
		return
	}

	var req dto.ResizeTableRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.tariffService.ResizeTable(companyIdx, tableIdx, req.Rows, req.Columns)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TariffHandler) tableCoords(c *gin.Context) (companyIdx, tableIdx int, ok bool) {
	companyIdx, err := ParseParamInt(c, "companyIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return 0, 0, false
	}

	tableIdx, err = ParseParamInt(c, "tableIdx")
	if err != nil {
		h.HandleServiceError(c, err)
		return 0, 0, false
	}

	return companyIdx, tableIdx, true
}
