package handlers

import (
	"net/http"

	"marlink_backend/internal/middleware"
	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gallery := rg.Group("/gallery")
	{
		gallery.GET("", h.List)
		gallery.GET("/:id", h.Get)
	}

	admin := rg.Group("/gallery")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary List gallery items, optionally filtered by category
// @Tags gallery
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.GalleryItem
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.galleryService.List(c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) Get(c *gin.Context) {
	item, err := h.galleryService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Upload a new gallery item (multipart, image part required)
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.GalleryItem
// @Router /gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GalleryItemRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	image, _ := c.FormFile("image")

	item, err := h.galleryService.Create(c.Request.Context(), &req, image, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req dto.GalleryItemRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	image, _ := c.FormFile("image")

	item, err := h.galleryService.Update(c.Request.Context(), c.Param("id"), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.galleryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}
