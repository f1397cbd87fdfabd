package ports

import (
	"context"
	"time"

	"github.com/metaflowia/user-api/internal/core/domain"
)

// PasswordHasher is a one-way salted hash/verify pair for credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hashed. Malformed hashes
	// verify as false, never as an error.
	Verify(plaintext, hashed string) bool
}

// TokenService issues and validates signed, time-limited session tokens.
type TokenService interface {
	// Issue produces a signed token carrying subject and expiry now+ttl.
	// The ttl is used verbatim; a zero or negative ttl yields a token that
	// is already expired.
	Issue(subject string, ttl time.Duration) (string, error)
	// Validate returns the subject of a well-formed, correctly signed,
	// unexpired token. Every failure mode collapses to
	// domain.ErrInvalidToken so callers cannot distinguish a forged token
	// from an expired one.
	Validate(token string) (string, error)
}

// AuthService covers login, session resolution, and role gating.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (string, error)
	LoginAsGuest(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	RequireAdmin(user *domain.User) (*domain.User, error)
}

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     string
}

// RegistrationService covers explicit and guest account creation.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	RegisterGuest(ctx context.Context) (*domain.User, error)
}

// UserService covers account listing and administrative bootstrap.
type UserService interface {
	List(ctx context.Context, offset, limit int64) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	EnsureDefaultAdmin(ctx context.Context, password string) error
}
