package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// categoryService implements CategoryService on top of a CategoryRepository.
// The owner of every category is the caller identity; it is never taken
// from the input.
type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, identity models.Identity) ([]models.Category, error) {
	if !identity.Valid() {
		return nil, ErrUnauthenticated
	}

	return s.categoryRepository.ListCategories(ctx, identity.UserID)
}

func (s *categoryService) GetCategory(ctx context.Context, identity models.Identity, categoryID int64) (models.Category, error) {
	if !identity.Valid() {
		return models.Category{}, ErrUnauthenticated
	}

	return s.categoryRepository.GetCategory(ctx, identity.UserID, categoryID)
}

func (s *categoryService) CreateCategory(ctx context.Context, identity models.Identity, input models.CategoryInput) (models.Category, error) {
	if !identity.Valid() {
		return models.Category{}, ErrUnauthenticated
	}

	input = input.Normalize()
	created, err := s.categoryRepository.CreateCategory(ctx, models.Category{
		Name:        input.Name,
		OwnerUserID: identity.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryService.CreateCategory").
			Str("user_id", identity.UserID).
			Msg("category creation failed")
		return models.Category{}, err
	}

	return created, nil
}

// UpdateCategory applies the name of input only.
func (s *categoryService) UpdateCategory(ctx context.Context, identity models.Identity, categoryID int64, input models.CategoryInput) (models.Category, error) {
	if !identity.Valid() {
		return models.Category{}, ErrUnauthenticated
	}

	input = input.Normalize()
	return s.categoryRepository.UpdateCategory(ctx, models.Category{
		ID:          categoryID,
		Name:        input.Name,
		OwnerUserID: identity.UserID,
	})
}

// DeleteCategory removes an unused category. A category that still has
// contacts is reported as a validation failure wrapping
// store.ErrCategoryHasContacts.
func (s *categoryService) DeleteCategory(ctx context.Context, identity models.Identity, categoryID int64) error {
	if !identity.Valid() {
		return ErrUnauthenticated
	}

	err := s.categoryRepository.DeleteCategory(ctx, identity.UserID, categoryID)
	if errors.Is(err, store.ErrCategoryHasContacts) {
		return validators.NewValidationError(err, validators.FieldCategoryID, validators.MsgCategoryInUse)
	}

	return err
}
