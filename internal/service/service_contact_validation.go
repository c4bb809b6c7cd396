package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactValidationService validates contact fields before they reach the
// wrapped ContactService, so malformed input never touches the store.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) ListContacts(ctx context.Context, identity models.Identity, query models.ListQuery) (models.ContactPage, error) {
	return v.inner.ListContacts(ctx, identity, query)
}

func (v *ContactValidationService) GetContact(ctx context.Context, identity models.Identity, contactID int64) (models.Contact, error) {
	return v.inner.GetContact(ctx, identity, contactID)
}

func (v *ContactValidationService) CreateContact(ctx context.Context, identity models.Identity, fields models.ContactFields) (models.Contact, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Contact{}, err
	}

	return v.inner.CreateContact(ctx, identity, fields)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, identity models.Identity, contactID int64, fields models.ContactFields) (models.Contact, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Contact{}, err
	}

	return v.inner.UpdateContact(ctx, identity, contactID, fields)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, identity models.Identity, contactID int64) error {
	return v.inner.DeleteContact(ctx, identity, contactID)
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}
