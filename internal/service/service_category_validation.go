package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// CategoryValidationService validates category input before it reaches the
// wrapped CategoryService. Reads and deletes pass through unchanged.
type CategoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
}

func NewCategoryValidationService() CategoryServiceWrapper {
	return &CategoryValidationService{
		validator: validators.NewCategoryValidator(),
	}
}

func (v *CategoryValidationService) ListCategories(ctx context.Context, identity models.Identity) ([]models.Category, error) {
	return v.inner.ListCategories(ctx, identity)
}

func (v *CategoryValidationService) GetCategory(ctx context.Context, identity models.Identity, categoryID int64) (models.Category, error) {
	return v.inner.GetCategory(ctx, identity, categoryID)
}

func (v *CategoryValidationService) CreateCategory(ctx context.Context, identity models.Identity, input models.CategoryInput) (models.Category, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Category{}, err
	}

	return v.inner.CreateCategory(ctx, identity, input)
}

func (v *CategoryValidationService) UpdateCategory(ctx context.Context, identity models.Identity, categoryID int64, input models.CategoryInput) (models.Category, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Category{}, err
	}

	return v.inner.UpdateCategory(ctx, identity, categoryID, input)
}

func (v *CategoryValidationService) DeleteCategory(ctx context.Context, identity models.Identity, categoryID int64) error {
	return v.inner.DeleteCategory(ctx, identity, categoryID)
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.inner = inner
	return v
}
