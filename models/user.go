package models

import "time"

// User represents an account entity used for authentication.
// It is owned by the identity part of the service; the contact core only
// ever sees its UserID and Login through [Identity].
type User struct {
	// UserID is the stable identifier of the user (UUID v7).
	// It is assigned by the server and never accepted from clients.
	UserID string `json:"-"`

	// Login is the unique user name, shown as the contact owner name.
	Login string `json:"login"`

	// Password is the plain-text password received from the client.
	// It is only present on register/login requests and never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the peppered password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the caller identity derived from the user record.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, UserName: u.Login}
}

// Identity is the authenticated caller as resolved by the auth middleware.
// It is threaded explicitly into every core operation.
type Identity struct {
	UserID   string
	UserName string
}

// Valid reports whether the identity carries a usable user id.
func (i Identity) Valid() bool {
	return i.UserID != ""
}
