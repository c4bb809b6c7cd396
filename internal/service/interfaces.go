package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// AuthService is the identity provider adapter: it registers and
// authenticates users and issues the bearer tokens the HTTP layer resolves
// into a [models.Identity].
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CategoryService manages the categories of the calling user. Categories of
// other users are reported as [store.ErrCategoryNotFound].
type CategoryService interface {
	ListCategories(ctx context.Context, identity models.Identity) ([]models.Category, error)
	GetCategory(ctx context.Context, identity models.Identity, categoryID int64) (models.Category, error)
	CreateCategory(ctx context.Context, identity models.Identity, input models.CategoryInput) (models.Category, error)
	UpdateCategory(ctx context.Context, identity models.Identity, categoryID int64, input models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, identity models.Identity, categoryID int64) error
}

// ContactService manages the contacts of the calling user. Contacts of
// other users are reported as [store.ErrContactNotFound].
type ContactService interface {
	ListContacts(ctx context.Context, identity models.Identity, query models.ListQuery) (models.ContactPage, error)
	GetContact(ctx context.Context, identity models.Identity, contactID int64) (models.Contact, error)
	CreateContact(ctx context.Context, identity models.Identity, fields models.ContactFields) (models.Contact, error)
	UpdateContact(ctx context.Context, identity models.Identity, contactID int64, fields models.ContactFields) (models.Contact, error)
	DeleteContact(ctx context.Context, identity models.Identity, contactID int64) error
}

// SummaryService computes the home page counters of the calling user.
type SummaryService interface {
	GetSummary(ctx context.Context, identity models.Identity) (models.Summary, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// CategoryServiceWrapper defines middleware composition for CategoryService.
// Implementations wrap an existing CategoryService to add behavior such as
// logging or validating.
type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}

// ContactServiceWrapper defines middleware composition for ContactService.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
