package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/bholemart/config"
)

// ErrBadToken is returned when a session cookie fails signature or expiry
// checks. Callers treat it as "no session".
var ErrBadToken = errors.New("session: invalid token")

// tokenClaims carries only the opaque session id; identity never leaves the
// server.
type tokenClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func secret() []byte { return []byte(config.AppKey()) }

// signToken wraps a session id in a signed, expiring JWT.
func signToken(id string, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// parseToken verifies a token and returns the embedded session id.
func parseToken(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrBadToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrBadToken
	}
	return claims.SessionID, nil
}
