package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// UserRepository persists registered users of the identity adapter.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CategoryRepository stores categories. Every method is scoped to the owner
// passed in userID; rows of other users behave as if they did not exist.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	GetCategory(ctx context.Context, userID string, categoryID int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, userID string, categoryID int64) error
}

// ContactRepository stores contacts. Creates and updates re-check that the
// referenced category belongs to the owner inside the write transaction.
type ContactRepository interface {
	ListContacts(ctx context.Context, userID string, query models.ListQuery) (models.ContactPage, error)
	GetContact(ctx context.Context, userID string, contactID int64) (models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, userID string, contactID int64) error
}

// SummaryRepository computes per-user counters.
type SummaryRepository interface {
	GetSummary(ctx context.Context, userID string) (models.Summary, error)
}

// ErrorClassificator maps driver errors of one database to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
