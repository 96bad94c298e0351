package handlers

import (
	"net/http"

	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/create-admin", h.CreateAdmin)
	}
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateAdmin godoc
// @Summary Create an admin account using the shared setup key
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Setup key and credentials"
// @Success 201 {object} dto.UserData
// @Router /auth/create-admin [post]
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.CreateAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
