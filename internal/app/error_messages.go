// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact keeper server handlers and the REST client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP error bodies. Keeping them in one place keeps the wording of the API
// consistent and lets clients match on them.
package app

const (
	// MsgValidationFailed accompanies field-level errors in the body.
	MsgValidationFailed = "validation failed"

	// MsgInvalidCategory is returned when a contact references a category
	// the caller does not own.
	MsgInvalidCategory = "invalid category"

	// MsgCategoryInUse is returned when deleting a category that still has
	// contacts.
	MsgCategoryInUse = "category still has contacts"

	// MsgInvalidJSON is returned when the request body cannot be decoded,
	// including bodies carrying server-assigned fields.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgEmptyBody is returned when a request that needs a body has none.
	MsgEmptyBody = "empty request body"

	// MsgInvalidDataProvided is returned when required credentials are
	// missing from a login request.
	MsgInvalidDataProvided = "invalid data provided"

	MsgCategoryNotFound = "category not found"
	MsgContactNotFound  = "contact not found"
	MsgNotFound         = "not found"
	MsgMethodNotAllowed = "method not allowed"

	// MsgLoginAlreadyExists is returned on registration with a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match. Unknown logins are not distinguished.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnauthorized is returned when no usable bearer token was sent.
	MsgUnauthorized = "unauthorized"

	// MsgServiceUnavailable is returned when the database cannot be reached.
	MsgServiceUnavailable = "service unavailable"
)
