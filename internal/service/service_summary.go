package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type summaryService struct {
	summaryRepository store.SummaryRepository

	logger *logger.Logger
}

func NewSummaryService(summaryRepository store.SummaryRepository, logger *logger.Logger) SummaryService {
	return &summaryService{
		summaryRepository: summaryRepository,
		logger:            logger,
	}
}

func (s *summaryService) GetSummary(ctx context.Context, identity models.Identity) (models.Summary, error) {
	if !identity.Valid() {
		return models.Summary{}, ErrUnauthenticated
	}

	return s.summaryRepository.GetSummary(ctx, identity.UserID)
}
