package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// Services groups every service used by the HTTP handler.
type Services struct {
	AuthService     AuthService
	CategoryService CategoryService
	ContactService  ContactService
	SummaryService  SummaryService
	AppInfoService  AppInfoService
}

// NewServices builds the services on top of storages. Category and contact
// services are wrapped with their validation layers.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	categoryService := NewCategoryValidationService().
		Wrap(NewCategoryService(storages.CategoryRepository, logger))
	contactService := NewContactValidationService().
		Wrap(NewContactService(storages.ContactRepository, cfg.Listing, logger))

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		CategoryService: categoryService,
		ContactService:  contactService,
		SummaryService:  NewSummaryService(storages.SummaryRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
