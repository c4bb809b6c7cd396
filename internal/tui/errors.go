// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
)

var errNothingToCopy = errors.New("contact has no email or phone")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, log in again"
	case errors.Is(err, adapter.ErrNotFound):
		return "Contact no longer exists"
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Server is temporarily unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or server is unreachable"
	}

	return err.Error()
}
