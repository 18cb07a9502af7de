// Package auth issues and validates the signed session tokens that gate
// every protected route.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers malformed, badly signed and expired tokens. The
// causes are deliberately not distinguished: the guard treats them all the
// same way.
var ErrInvalidToken = errors.New("invalid token")

// Claims binds a user ID to the registered JWT claims. The jti (ID) claim
// keys the optional server-side revocation set.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"uid"`
}

// TokenManager issues and parses HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager signing with the given secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed token for the given user, expiring TTL from now.
// The returned jti identifies the token in the revocation set.
func (m *TokenManager) Issue(userID int) (token string, jti string, err error) {
	jti = uuid.NewString()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		UserID: userID,
	})

	token, err = t.SignedString(m.secret)
	if err != nil {
		return "", "", err
	}

	return token, jti, nil
}

// Parse validates signature and expiry and returns the claims.
// Any failure maps to ErrInvalidToken.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
