package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metaflowia/user-api/internal/core/domain"
	"github.com/metaflowia/user-api/internal/core/ports"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Default administrator account created at startup when absent.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminFullName = "Administrador"
)

// UserService implements account listing and administrative bootstrap.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// List returns users in insertion order. Negative offsets are treated as
// zero; a non-positive limit falls back to the default and limits above the
// cap are clamped.
func (s *UserService) List(ctx context.Context, offset, limit int64) ([]*domain.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, offset, limit)
}

// Count returns the total number of accounts.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// EnsureDefaultAdmin creates the default admin account on first startup.
// Subsequent calls are no-ops; a concurrent creation surfacing
// ErrDuplicateUser is treated as success.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context, password string) error {
	_, err := s.repo.FindByIdentifier(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:       defaultAdminUsername,
		Email:          defaultAdminEmail,
		FullName:       defaultAdminFullName,
		HashedPassword: hash,
		Role:           domain.RoleAdmin,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, domain.ErrDuplicateUser) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
