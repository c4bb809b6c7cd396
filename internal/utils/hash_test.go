// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testPepper = "test-secret-key"

func TestPepperPassword_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte(testPepper))
	h.Write([]byte("p@ssw0rd"))

	assert.Equal(t, hex.EncodeToString(h.Sum(nil)), PepperPassword("p@ssw0rd", testPepper))
}

func TestPepperPassword(t *testing.T) {
	tests := []struct {
		name      string
		a, b      [2]string
		wantEqual bool
	}{
		{name: "deterministic", a: [2]string{"data", testPepper}, b: [2]string{"data", testPepper}, wantEqual: true},
		{name: "different peppers", a: [2]string{"data", "key-1"}, b: [2]string{"data", "key-2"}},
		{name: "different passwords", a: [2]string{"data-1", testPepper}, b: [2]string{"data-2", testPepper}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PepperPassword(tt.a[0], tt.a[1]) == PepperPassword(tt.b[0], tt.b[1])
			assert.Equal(t, tt.wantEqual, got)
		})
	}
}

func TestPepperPassword_FitsBcrypt(t *testing.T) {
	for _, in := range []string{"", "short", strings.Repeat("x", 500)} {
		assert.Len(t, PepperPassword(in, testPepper), 64, "input of len %d", len(in))
	}
}
