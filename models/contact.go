package models

import (
	"strings"
	"time"
)

// Length limits of contact fields, counted in characters.
const (
	ContactNameMaxLength       = 50
	ContactAddressMaxLength    = 120
	ContactCityMaxLength       = 60
	ContactProvinceMaxLength   = 60
	ContactPostalCodeMaxLength = 10
)

// Contact is a person record belonging to exactly one category and one user.
type Contact struct {
	ID int64 `json:"id"`

	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`

	// CreatedAt is set once by the server when the contact is created.
	CreatedAt time.Time `json:"created_at"`

	// CategoryID must reference a category owned by the same user.
	CategoryID int64 `json:"category_id"`

	// CategoryName is filled on reads for presentation.
	CategoryName string `json:"category_name,omitempty"`

	// OwnerUserID scopes every read and write of the contact.
	OwnerUserID string `json:"-"`

	// OwnerUserName is the login of the owner at creation time.
	OwnerUserName string `json:"owner_user_name"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactFields holds the client-editable part of a contact.
// Owner, id and creation time are never taken from it.
type ContactFields struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	CategoryID int64   `json:"category_id"`
}

// Apply copies the editable fields onto c, leaving id, owner and
// creation time untouched.
func (f ContactFields) Apply(c *Contact) {
	c.FirstName = f.FirstName
	c.LastName = f.LastName
	c.Address = f.Address
	c.City = f.City
	c.Province = f.Province
	c.PostalCode = f.PostalCode
	c.Phone = f.Phone
	c.Email = f.Email
	c.CategoryID = f.CategoryID
}

// Fields returns the editable part of the contact.
func (c Contact) Fields() ContactFields {
	return ContactFields{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Address:    c.Address,
		City:       c.City,
		Province:   c.Province,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Email:      c.Email,
		CategoryID: c.CategoryID,
	}
}

// Normalize returns a copy of f with surrounding whitespace removed from
// every text field. Optional fields that end up empty become nil.
func (f ContactFields) Normalize() ContactFields {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Address = normalizeOptional(f.Address)
	f.City = normalizeOptional(f.City)
	f.Province = normalizeOptional(f.Province)
	f.PostalCode = normalizeOptional(f.PostalCode)
	f.Phone = normalizeOptional(f.Phone)
	f.Email = normalizeOptional(f.Email)
	return f
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
