package handlers

import (
	"net/http"

	"marlink_backend/internal/middleware"
	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves downloadable documents and the sailing schedule.
type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	docs := rg.Group("/download-docs")
	{
		docs.GET("", h.ListDocs)
		docs.GET("/:id", h.GetDoc)
	}

	docsAdmin := rg.Group("/download-docs")
	docsAdmin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		docsAdmin.POST("", h.CreateDoc)
		docsAdmin.PUT("/:id", h.UpdateDoc)
		docsAdmin.DELETE("/:id", h.DeleteDoc)
	}

	rg.GET("/schedule-file", h.GetSchedule)

	scheduleAdmin := rg.Group("/schedule-file")
	scheduleAdmin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		scheduleAdmin.POST("", h.ReplaceSchedule)
		scheduleAdmin.DELETE("", h.DeleteSchedule)
	}
}

func (h *DocumentHandler) ListDocs(c *gin.Context) {
	docs, err := h.documentService.ListDocs(c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) GetDoc(c *gin.Context) {
	doc, err := h.documentService.GetDoc(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) CreateDoc(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DownloadDocRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	file, _ := c.FormFile("file")

	doc, err := h.documentService.CreateDoc(c.Request.Context(), &req, file, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) UpdateDoc(c *gin.Context) {
	var req dto.DownloadDocRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	file, _ := c.FormFile("file")

	doc, err := h.documentService.UpdateDoc(c.Request.Context(), c.Param("id"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) DeleteDoc(c *gin.Context) {
	if err := h.documentService.DeleteDoc(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// GetSchedule godoc
// @Summary Get the current sailing schedule file
// @Tags schedule
// @Produce json
// @Success 200 {object} models.ScheduleFile
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /schedule-file [get]
func (h *DocumentHandler) GetSchedule(c *gin.Context) {
	file, err := h.documentService.GetSchedule()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

func (h *DocumentHandler) ReplaceSchedule(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleFileRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	file, _ := c.FormFile("file")

	schedule, err := h.documentService.ReplaceSchedule(c.Request.Context(), &req, file, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *DocumentHandler) DeleteSchedule(c *gin.Context) {
	if err := h.documentService.DeleteSchedule(c.Request.Context()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule file deleted"})
}
