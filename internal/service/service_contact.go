// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactService implements ContactService on top of a ContactRepository.
//
// The owner id, owner name and creation time of a contact come from the
// caller identity and the service clock, never from the input fields.
type contactService struct {
	contactRepository store.ContactRepository

	// defaultPageSize and maxPageSize bound the page size of list queries.
	// Non-positive values fall back to the models defaults.
	defaultPageSize int
	maxPageSize     int

	now func() time.Time

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, cfg config.Listing, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		defaultPageSize:   cfg.DefaultPageSize,
		maxPageSize:       cfg.MaxPageSize,
		now:               time.Now,
		logger:            logger,
	}
}

// ListContacts normalizes query (sort fallback, page and page size clamps)
// and returns the matching page.
func (s *contactService) ListContacts(ctx context.Context, identity models.Identity, query models.ListQuery) (models.ContactPage, error) {
	if !identity.Valid() {
		return models.ContactPage{}, ErrUnauthenticated
	}

	return s.contactRepository.ListContacts(ctx, identity.UserID, query.Normalize(s.defaultPageSize, s.maxPageSize))
}

func (s *contactService) GetContact(ctx context.Context, identity models.Identity, contactID int64) (models.Contact, error) {
	if !identity.Valid() {
		return models.Contact{}, ErrUnauthenticated
	}

	return s.contactRepository.GetContact(ctx, identity.UserID, contactID)
}

// CreateContact stores a new contact owned by the caller. A category that is
// absent or owned by someone else fails with a validation error on
// category_id.
func (s *contactService) CreateContact(ctx context.Context, identity models.Identity, fields models.ContactFields) (models.Contact, error) {
	if !identity.Valid() {
		return models.Contact{}, ErrUnauthenticated
	}

	contact := models.Contact{
		CreatedAt:     s.now().UTC().Truncate(time.Microsecond),
		OwnerUserID:   identity.UserID,
		OwnerUserName: identity.UserName,
	}
	fields.Normalize().Apply(&contact)

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*contactService.CreateContact").
			Str("user_id", identity.UserID).
			Int64("category_id", fields.CategoryID).
			Msg("contact creation failed")
		return models.Contact{}, categoryError(err)
	}

	return created, nil
}

// UpdateContact rewrites the editable fields of an owned contact.
func (s *contactService) UpdateContact(ctx context.Context, identity models.Identity, contactID int64, fields models.ContactFields) (models.Contact, error) {
	if !identity.Valid() {
		return models.Contact{}, ErrUnauthenticated
	}

	contact := models.Contact{
		ID:            contactID,
		OwnerUserID:   identity.UserID,
		OwnerUserName: identity.UserName,
	}
	fields.Normalize().Apply(&contact)

	updated, err := s.contactRepository.UpdateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, categoryError(err)
	}

	return updated, nil
}

func (s *contactService) DeleteContact(ctx context.Context, identity models.Identity, contactID int64) error {
	if !identity.Valid() {
		return ErrUnauthenticated
	}

	return s.contactRepository.DeleteContact(ctx, identity.UserID, contactID)
}

// categoryError turns store.ErrInvalidCategory into a field error on
// category_id. Other errors are returned as is.
func categoryError(err error) error {
	if errors.Is(err, store.ErrInvalidCategory) {
		return validators.NewValidationError(err, validators.FieldCategoryID, validators.MsgInvalidCategory)
	}
	return err
}
