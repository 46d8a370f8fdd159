package auth

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword("secret123", hash) {
		t.Fatal("expected verification to succeed for the original password")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword("battery staple", hash) {
		t.Fatal("expected verification to fail for a different password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatal("expected verification to fail for a malformed hash")
	}
	if VerifyPassword("anything", "") {
		t.Fatal("expected verification to fail for an empty hash")
	}
}

func TestHashPassword_SaltedOutputDiffers(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same secret must differ (random salt)")
	}
}

func TestHashPassword_OversizeSecret(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("x", 100))
	if err != common.ErrEncoding {
		t.Fatalf("expected common.ErrEncoding for oversize secret, got %v", err)
	}
}
