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

// contactRepository is the SQL implementation of [ContactRepository].
//
// Writes that reference a category verify, inside the same transaction, that
// the category belongs to the contact owner. A failed check leaves nothing
// written.
type contactRepository struct {
	logger     *logger.Logger
	db         *DB
	categories *categoryRepository
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:         db,
		logger:     logger,
		categories: &categoryRepository{db: db, logger: logger},
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanContact reads one row selected with contactColumns.
func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.City, &c.Province,
		&c.PostalCode, &c.Phone, &c.Email, &c.CreatedAt, &c.CategoryID,
		&c.CategoryName, &c.OwnerUserID, &c.OwnerUserName,
	)
	return c, err
}

// ListContacts returns one page of the contacts of userID matching query,
// the unpaged match count and the categories of userID. query must be
// normalized with [models.ListQuery.Normalize].
func (r *contactRepository) ListContacts(ctx context.Context, userID string, query models.ListQuery) (models.ContactPage, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*contactRepository.ListContacts").
		Str("user_id", userID).
		Logger()

	countQuery, countArgs, err := r.db.buildCountContactsQuery(userID, query)
	if err != nil {
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := r.db.buildListContactsQuery(userID, query)
	if err != nil {
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("error counting contacts")
		return models.ContactPage{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	items, err := r.queryContacts(ctx, listQuery, listArgs, query.PageSize)
	if err != nil {
		log.Err(err).Msg("error selecting contacts")
		return models.ContactPage{}, err
	}

	categories, err := r.categories.listCategories(ctx, r.db.DB, userID)
	if err != nil {
		return models.ContactPage{}, err
	}

	return models.ContactPage{
		Items:      items,
		TotalCount: total,
		TotalPages: models.TotalPages(total, query.PageSize),
		Categories: categories,
		Search:     query.Search,
		CategoryID: query.CategoryID,
		Sort:       query.Sort,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

// queryContacts runs a contact SELECT and releases the connection before
// returning, so that SQLite's single connection is free for the next query.
func (r *contactRepository) queryContacts(ctx context.Context, query string, args []any, capacity int) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Contact, 0, max(capacity, 0))
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, contact)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return items, nil
}

// GetContact returns the contact if it exists and belongs to userID.
func (r *contactRepository) GetContact(ctx context.Context, userID string, contactID int64) (models.Contact, error) {
	return r.getContact(ctx, r.db.DB, userID, contactID)
}

func (r *contactRepository) getContact(ctx context.Context, q DBTX, userID string, contactID int64) (models.Contact, error) {
	query, args, err := r.db.buildSelectContactQuery(userID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*contactRepository.GetContact").
			Str("user_id", userID).
			Int64("contact_id", contactID).
			Msg("error selecting contact")
		return models.Contact{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return contact, nil
}

// checkCategory verifies that categoryID belongs to userID and keeps it from
// being deleted until tx ends.
func (r *contactRepository) checkCategory(ctx context.Context, tx DBTX, userID string, categoryID int64) error {
	_, err := r.categories.getCategory(ctx, tx, userID, categoryID, r.db.lockForKeyShare())
	if errors.Is(err, ErrCategoryNotFound) {
		return ErrInvalidCategory
	}
	return err
}

// CreateContact inserts contact after checking its category. OwnerUserID,
// OwnerUserName and CreatedAt must already be set by the caller.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*contactRepository.CreateContact").
		Str("user_id", contact.OwnerUserID).
		Int64("category_id", contact.CategoryID).
		Logger()

	var created models.Contact
	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := r.checkCategory(ctx, tx, contact.OwnerUserID, contact.CategoryID); err != nil {
			return err
		}

		query, args, err := r.db.buildInsertContactQuery(contact)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			if r.db.classification(err) == ForeignKeyViolation {
				return ErrInvalidCategory
			}
			log.Err(err).Msg("error inserting contact")
			return r.db.wrapError(ErrExecutingStatement, err)
		}

		created, err = r.getContact(ctx, tx, contact.OwnerUserID, id)
		return err
	})
	if err != nil {
		return models.Contact{}, err
	}

	return created, nil
}

// UpdateContact rewrites the editable fields of an owned contact. The
// creation time and the owner columns keep their stored values.
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*contactRepository.UpdateContact").
		Str("user_id", contact.OwnerUserID).
		Int64("contact_id", contact.ID).
		Logger()

	var updated models.Contact
	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.db.buildLockContactQuery(contact.OwnerUserID, contact.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var stored models.Contact
		err = tx.QueryRowContext(ctx, query, args...).Scan(&stored.CreatedAt, &stored.OwnerUserName)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrContactNotFound
		}
		if err != nil {
			log.Err(err).Msg("error locking contact")
			return r.db.wrapError(ErrExecutingQuery, err)
		}

		if err = r.checkCategory(ctx, tx, contact.OwnerUserID, contact.CategoryID); err != nil {
			return err
		}

		query, args, err = r.db.buildUpdateContactQuery(contact)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			if r.db.classification(err) == ForeignKeyViolation {
				return ErrInvalidCategory
			}
			log.Err(err).Msg("error updating contact")
			return r.db.wrapError(ErrExecutingStatement, err)
		}
		if affected, affErr := result.RowsAffected(); affErr == nil && affected == 0 {
			return ErrContactNotFound
		}

		updated, err = r.getContact(ctx, tx, contact.OwnerUserID, contact.ID)
		return err
	})
	if err != nil {
		return models.Contact{}, err
	}

	return updated, nil
}

// DeleteContact removes an owned contact. A second delete of the same id
// reports [ErrContactNotFound].
func (r *contactRepository) DeleteContact(ctx context.Context, userID string, contactID int64) error {
	query, args, err := r.db.buildDeleteContactQuery(userID, contactID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*contactRepository.DeleteContact").
			Str("user_id", userID).
			Int64("contact_id", contactID).
			Msg("error deleting contact")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}
