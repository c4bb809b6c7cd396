package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// PepperPassword returns the hex-encoded HMAC-SHA256 of password keyed
// with pepper. The result is what gets passed to bcrypt, so its length is
// always 64 bytes regardless of the password length and stays below the
// 72-byte bcrypt input limit.
func PepperPassword(password, pepper string) string {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}
