package handlers

import (
	"net/http"

	"marlink_backend/internal/services"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contact := rg.Group("/contact")
	{
		contact.POST("", h.Send)
		contact.GET("/config", h.Config)
	}
}

// Send godoc
// @Summary Relay a contact form message to the site owners
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 200 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.contactService.Send(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}

func (h *ContactHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, h.contactService.Config())
}
