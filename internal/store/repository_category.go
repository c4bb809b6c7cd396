// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// categoryRepository is the SQL implementation of [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListCategories returns the categories of userID ordered by name.
func (r *categoryRepository) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	return r.listCategories(ctx, r.db.DB, userID)
}

func (r *categoryRepository) listCategories(ctx context.Context, q DBTX, userID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectCategoriesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Str("user_id", userID).Msg("error selecting categories")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.OwnerUserID); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error scanning category")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error iterating categories")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return categories, nil
}

// GetCategory returns the category if it exists and belongs to userID.
func (r *categoryRepository) GetCategory(ctx context.Context, userID string, categoryID int64) (models.Category, error) {
	return r.getCategory(ctx, r.db.DB, userID, categoryID, "")
}

func (r *categoryRepository) getCategory(ctx context.Context, q DBTX, userID string, categoryID int64, lock string) (models.Category, error) {
	query, args, err := r.db.buildSelectCategoryQuery(userID, categoryID, lock)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Category
	err = q.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.OwnerUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryRepository.GetCategory").
			Str("user_id", userID).
			Int64("category_id", categoryID).
			Msg("error selecting category")
		return models.Category{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return c, nil
}

// CreateCategory inserts category. OwnerUserID must already be the caller.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := r.db.buildInsertCategoryQuery(category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryRepository.CreateCategory").
			Str("user_id", category.OwnerUserID).
			Msg("error inserting category")
		return models.Category{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return category, nil
}

// UpdateCategory renames the category identified by category.ID when it
// belongs to category.OwnerUserID.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := r.db.buildUpdateCategoryQuery(category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Category
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updated.ID, &updated.Name, &updated.OwnerUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryRepository.UpdateCategory").
			Str("user_id", category.OwnerUserID).
			Int64("category_id", category.ID).
			Msg("error updating category")
		return models.Category{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteCategory removes an owned category that no contact references.
// The ownership check, the reference count and the delete share one
// transaction.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID string, categoryID int64) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*categoryRepository.DeleteCategory").
		Str("user_id", userID).
		Int64("category_id", categoryID).
		Logger()

	return r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := r.getCategory(ctx, tx, userID, categoryID, r.db.lockForUpdate()); err != nil {
			return err
		}

		query, args, err := r.db.buildCountCategoryContactsQuery(categoryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var contacts int
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&contacts); err != nil {
			log.Err(err).Msg("error counting category contacts")
			return r.db.wrapError(ErrExecutingQuery, err)
		}
		if contacts > 0 {
			return ErrCategoryHasContacts
		}

		query, args, err = r.db.buildDeleteCategoryQuery(userID, categoryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.classification(err) == ForeignKeyViolation {
				return ErrCategoryHasContacts
			}
			log.Err(err).Msg("error deleting category")
			return r.db.wrapError(ErrExecutingStatement, err)
		}

		return nil
	})
}
