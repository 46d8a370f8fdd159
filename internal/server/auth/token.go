package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// Claims is the signed claim set carried inside a session token: the subject
// (user login) plus the registered expiry claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec issues and parses signed session tokens. The signing secret is fixed
// at construction and never rotated by the codec; it is safe for
// unsynchronized concurrent use.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec signing with the given process-wide secret.
func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Issue builds a claim set for subject expiring at now+ttl, signs it with
// HS256, and returns the encoded token. The ttl is always chosen by the
// caller; a non-positive ttl produces an already-expired token.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Parse verifies the token signature over the exact received bytes and then
// inspects the claims. Failure kinds, in order of precedence:
//
//   - common.ErrTokenSignatureInvalid: MAC does not match a recomputation,
//     or the token was signed with an unexpected method.
//   - common.ErrTokenMalformed: the encoding cannot be decoded.
//   - common.ErrTokenExpired: correctly signed but expiresAt <= now.
//
// Signature failure takes precedence so that a forged-but-unexpired payload
// is rejected as a forgery, and a validly-signed-but-expired payload is
// distinguishable from one.
func (c *Codec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, common.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
