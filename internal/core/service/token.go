package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/metaflowia/user-api/internal/core/domain"
)

// DefaultTokenTTL is the session lifetime applied when no TTL is configured.
const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and validates HS256-signed JWTs carrying a subject
// claim and an expiry. Tokens are self-contained; expiry is the only
// termination mechanism, there is no revocation list.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token for subject expiring at now+ttl. The ttl is
// applied verbatim: a zero or negative ttl yields an already-expired token.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate returns the subject of a correctly signed, unexpired token.
// Malformed payloads, bad signatures, and expired tokens all collapse to
// domain.ErrInvalidToken so the failure mode is not observable to callers.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
