package ports

import (
	"context"

	"github.com/metaflowia/user-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Identifier matching policy: usernames are compared case-sensitively,
// emails case-insensitively (normalized to lower case at write time).
// The storage layer's uniqueness constraints are the final arbiter for
// duplicates; Create must return domain.ErrDuplicateUser on violation
// regardless of any earlier existence check.
type UserRepository interface {
	// FindByIdentifier resolves a user by username or email.
	// Returns domain.ErrUserNotFound when no record matches.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	// Create persists a new user and returns the stored record with its
	// assigned ID. Returns domain.ErrDuplicateUser when username or email
	// is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// Count returns the total number of stored users.
	Count(ctx context.Context) (int64, error)

	// List returns users in insertion order, paginated by offset and limit.
	List(ctx context.Context, offset, limit int64) ([]*domain.User, error)
}

// GuestSequence hands out monotonically increasing numbers for guest
// usernames. Implementations must be safe under concurrent calls; two
// concurrent Next calls never return the same value.
type GuestSequence interface {
	Next(ctx context.Context) (int64, error)
}
