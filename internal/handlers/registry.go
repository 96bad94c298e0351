package handlers

import (
	"marlink_backend/internal/config"
	"marlink_backend/internal/services"
	"marlink_backend/internal/validator"
)

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	GalleryHandler      *GalleryHandler
	BlogHandler         *BlogHandler
	CategoryHandler     *CategoryHandler
	DocumentHandler     *DocumentHandler
	TariffHandler       *TariffHandler
	ExchangeRateHandler *ExchangeRateHandler
	ContactHandler      *ContactHandler
	ConfigHandler       *ConfigHandler
}

// NewAppHandlers builds the handler set over the service container.
func NewAppHandlers(sc *services.ServiceContainer, cfg *config.Config) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		GalleryHandler:      NewGalleryHandler(base, sc.GalleryService),
		BlogHandler:         NewBlogHandler(base, sc.BlogService),
		CategoryHandler:     NewCategoryHandler(base, sc.CategoryService),
		DocumentHandler:     NewDocumentHandler(base, sc.DocumentService),
		TariffHandler:       NewTariffHandler(base, sc.TariffService),
		ExchangeRateHandler: NewExchangeRateHandler(base, sc.ExchangeRateService),
		ContactHandler:      NewContactHandler(base, sc.ContactService),
		ConfigHandler:       NewConfigHandler(base, cfg),
	}
}
