// Package token implements the signed credential codec. Tokens are HS256 JWTs
// carrying the user id and an expiry. Verification failures are distinguished
// internally (malformed / bad signature / expired) so callers can log and test
// them, but the HTTP layer collapses all of them into a single 401.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

const defaultTTL = 24 * time.Hour

// Codec issues and verifies credentials with a shared symmetric secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec. A non-positive ttl falls back to 24h.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token embedding the user id, issued-at and expiry.
func (c *Codec) Issue(userID string) (string, error) {
	now := c.now().UTC()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignatureInvalid
		default:
			return "", ErrMalformed
		}
	}
	if !tkn.Valid {
		return "", ErrSignatureInvalid
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", ErrMalformed
	}
	return id, nil
}
