package utils // package utils provides helper functions for session token creation and parsing

import (
	"errors" // sentinel errors for token validation
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned when a session token fails validation,
// whether the signature is wrong, the token has expired, or the
// session claim is missing.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken represents a signed JWT bound to a seating session along
// with its expiry.  The Token field contains the JWT string.  Exp stores
// the expiration timestamp as a time.Time.  Session tokens are encoded
// in the Authorization header when calling session endpoints.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a seating session.
// It takes the signing secret, the session ID, and a TTL in minutes.
// The JWT carries the session ID (sid), expiration (exp) and issued at
// (iat) claims.
func NewSessionToken(secret, sessionID string, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a signed session token and returns the
// session ID it carries.  Only HS256 signatures are accepted.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
