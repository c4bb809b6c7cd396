package models

import "strings"

// CategoryNameMaxLength is the maximum number of characters in a category name.
const CategoryNameMaxLength = 50

// Category is a user-defined grouping label attached to contacts.
// A category belongs to exactly one user.
type Category struct {
	// ID is generated by the store.
	ID int64 `json:"id"`

	// Name is required and at most [CategoryNameMaxLength] characters long.
	Name string `json:"name"`

	// OwnerUserID is always taken from the caller identity, never from input.
	OwnerUserID string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryInput is the client-editable part of a category.
type CategoryInput struct {
	Name string `json:"name"`
}

// Normalize returns a copy of in with the name trimmed.
func (in CategoryInput) Normalize() CategoryInput {
	in.Name = strings.TrimSpace(in.Name)
	return in
}
