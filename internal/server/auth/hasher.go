// Package auth implements the authentication and authorization core:
// password hashing, the signed session-token codec, credential
// authentication, bearer-token resolution, and role gating.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// HashPassword produces a salted one-way bcrypt hash of the password.
// Secrets longer than bcrypt's 72-byte limit yield common.ErrEncoding.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.ErrEncoding
		}
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A mismatch, an oversize password, or a malformed hash all return false;
// verification never fails with an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
