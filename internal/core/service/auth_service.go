package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metaflowia/user-api/internal/core/domain"
	"github.com/metaflowia/user-api/internal/core/ports"
)

// AuthService implements login, session resolution, and role gating.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	tokenTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, tokenTTL: tokenTTL}
}

// Login verifies credentials and returns a session token. Unknown
// identifier, wrong password, and disabled account all fail with
// domain.ErrInvalidCredentials so the response never reveals which
// check failed.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("resolve user: %w", err)
	}

	if user.Disabled {
		return "", domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username, s.tokenTTL)
}

// LoginAsGuest issues a token for the shared guest subject without any
// store lookup or credential check.
func (s *AuthService) LoginAsGuest(ctx context.Context) (string, error) {
	return s.tokens.Issue(domain.GuestSubject, s.tokenTTL)
}

// CurrentUser resolves a bearer token to its user record. An invalid token
// and a token whose subject no longer exists both fail with
// domain.ErrInvalidToken.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByIdentifier(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	return user, nil
}

// RequireAdmin passes the user through unchanged when it holds the admin
// role, otherwise fails with domain.ErrForbidden.
func (s *AuthService) RequireAdmin(user *domain.User) (*domain.User, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
