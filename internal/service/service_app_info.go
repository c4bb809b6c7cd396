package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports the configured API version together with the
// linker-injected build metadata. Unavailable build fields are omitted.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionResponse{
			Version:     cfg.Version,
			BuildDate:   availableOrEmpty(build.BuildDate()),
			BuildCommit: availableOrEmpty(build.BuildCommit()),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return s.info
}

func availableOrEmpty(v string) string {
	if v == models.NotAvailable {
		return ""
	}
	return v
}
