package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type summaryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSummaryRepository constructs a [SummaryRepository] backed by db.
func NewSummaryRepository(db *DB, logger *logger.Logger) SummaryRepository {
	logger.Debug().Msg("creating summary repository")
	return &summaryRepository{
		db:     db,
		logger: logger,
	}
}

// GetSummary counts the contacts and categories owned by userID.
func (r *summaryRepository) GetSummary(ctx context.Context, userID string) (models.Summary, error) {
	query, args, err := r.db.buildSummaryQuery(userID)
	if err != nil {
		return models.Summary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summary models.Summary
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&summary.TotalContacts, &summary.TotalCategories); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*summaryRepository.GetSummary").
			Str("user_id", userID).
			Msg("error counting summary")
		return models.Summary{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return summary, nil
}
