package auth

import (
	"errors"
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// tokenValidity is the fixed validity window of an issued token.
const tokenValidity = 10 * time.Hour

// ErrInvalidToken is returned by Verify for any token that cannot be
// accepted: bad signature, malformed structure, or past expiry. Callers get
// no further detail about which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies signed, self-contained identity tokens.
// The signing secret is an explicit constructor parameter so tests can
// inject their own.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed HS256 token carrying the username as subject,
// valid for ten hours from now.
func (s *TokenService) Issue(username string) (string, error) {
	return s.issue(username, time.Now())
}

func (s *TokenService) issue(username string, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenValidity)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(s.secret)                        // Sign the token with the secret
}

// Verify parses and validates a token string, returning the embedded
// username. All failure modes collapse into ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil // Return the secret key for validation
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
