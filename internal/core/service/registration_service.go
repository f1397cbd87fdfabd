package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metaflowia/user-api/internal/core/domain"
	"github.com/metaflowia/user-api/internal/core/ports"
)

// guestPassword is the placeholder credential for provisioned guest
// accounts. Guests are expected to use token-based access, not this value.
const guestPassword = "invitado"

// guestCreateAttempts bounds the retry loop when a generated guest username
// collides with an existing record (e.g. after the sequence was reset).
const guestCreateAttempts = 3

// RegistrationService implements explicit and guest account creation.
type RegistrationService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	seq    ports.GuestSequence
}

func NewRegistrationService(repo ports.UserRepository, hasher ports.PasswordHasher, seq ports.GuestSequence) *RegistrationService {
	return &RegistrationService{repo: repo, hasher: hasher, seq: seq}
}

// Register creates a new account. The username existence pre-check gives a
// fast failure path; the repository's uniqueness constraint remains the
// final arbiter under concurrent registration.
func (s *RegistrationService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleGuest
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByIdentifier(ctx, input.Username); err == nil {
		return nil, domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		FullName:       input.FullName,
		HashedPassword: hash,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// RegisterGuest provisions a persisted guest account named guest<N>, where
// N comes from an atomic sequence so concurrent calls never collide the way
// a count-then-create scheme would.
func (s *RegistrationService) RegisterGuest(ctx context.Context) (*domain.User, error) {
	hash, err := s.hasher.Hash(guestPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	for attempt := 0; attempt < guestCreateAttempts; attempt++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("guest sequence: %w", err)
		}

		username := fmt.Sprintf("guest%d", n)
		user := &domain.User{
			Username:       username,
			Email:          fmt.Sprintf("%s@guest.local", username),
			FullName:       "guest",
			HashedPassword: hash,
			Role:           domain.RoleGuest,
			CreatedAt:      time.Now().UTC(),
		}

		created, err := s.repo.Create(ctx, user)
		if err != nil {
			// Sequence behind the store contents: take the next number.
			if errors.Is(err, domain.ErrDuplicateUser) {
				continue
			}
			return nil, err
		}
		return created, nil
	}
	return nil, domain.ErrDuplicateUser
}
