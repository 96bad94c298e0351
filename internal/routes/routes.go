package routes

import (
	"marlink_backend/internal/config"
	"marlink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes registers every HTTP route of the application.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, cfg *config.Config) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.GalleryHandler.RegisterRoutes(api)
		appHandlers.BlogHandler.RegisterRoutes(api)
		appHandlers.CategoryHandler.RegisterRoutes(api)
		appHandlers.DocumentHandler.RegisterRoutes(api)
		appHandlers.TariffHandler.RegisterRoutes(api)
		appHandlers.ExchangeRateHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.ConfigHandler.RegisterRoutes(api)
	}

	// Uploaded assets are served straight off local disk.
	ginRouter.Static("/uploads", cfg.Storage.BasePath)

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
