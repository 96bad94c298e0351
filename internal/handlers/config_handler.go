package handlers

import (
	"net/http"

	"marlink_backend/internal/config"
	"marlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ConfigHandler exposes read-only public configuration.
type ConfigHandler struct {
	*BaseHandler
	cfg *config.Config
}

func NewConfigHandler(base *BaseHandler, cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		BaseHandler: base,
		cfg:         cfg,
	}
}

func (h *ConfigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/config/tracking-url", h.TrackingURL)
}

func (h *ConfigHandler) TrackingURL(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TrackingConfig{TrackingURL: h.cfg.Tracking.URL})
}
