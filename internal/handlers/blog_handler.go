package handlers

import (
	"net/http"

	"marlink_backend/internal/middleware"
	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/:id", h.Get)
	}

	admin := rg.Group("/blogs")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogService.List(c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blogService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.Create(&req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.BlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
