package services

import (
	"marlink_backend/internal/config"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer holds every service in the application.
type ServiceContainer struct {
	AuthService         AuthService
	GalleryService      GalleryService
	BlogService         BlogService
	CategoryService     CategoryService
	DocumentService     DocumentService
	TariffService       TariffService
	ExchangeRateService ExchangeRateService
	ContactService      ContactService
	UploadService       UploadService
}

// NewServiceContainer wires repositories and services against the
// given database handle and configuration.
func NewServiceContainer(db *gorm.DB, store storage.Storage, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	tariffRepo := repositories.NewTariffRepository(db)
	rateRepo := repositories.NewExchangeRateRepository(db)

	uploads := NewUploadService(store, cfg)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, cfg),
		GalleryService:      NewGalleryService(galleryRepo, uploads),
		BlogService:         NewBlogService(blogRepo),
		CategoryService:     NewCategoryService(categoryRepo),
		DocumentService:     NewDocumentService(docRepo, uploads),
		TariffService:       NewTariffService(tariffRepo, rateRepo),
		ExchangeRateService: NewExchangeRateService(rateRepo, tariffRepo),
		ContactService:      NewContactService(cfg),
		UploadService:       uploads,
	}
}
