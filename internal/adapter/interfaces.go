// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the contact keeper REST API.
//
// [ServerAdapter] decouples the command-line client from the transport. The
// HTTP implementation ([NewHTTPServerAdapter]) is built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the contact keeper server.
// Implementations attach the bearer token obtained by Register or Login to
// every later request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)
	// Token returns the current bearer token, or "" before authentication.
	Token() string

	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) error

	Version(ctx context.Context) (string, error)
	Summary(ctx context.Context) (models.Summary, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error)

	// ListContacts returns one page; zero fields of query are not sent.
	ListContacts(ctx context.Context, query models.ListQuery) (models.ContactPage, error)
	CreateContact(ctx context.Context, fields models.ContactFields) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
}
