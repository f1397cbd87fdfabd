package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/metaflowia/user-api/internal/core/domain"
)

// stubUserRepo is an in-memory ports.UserRepository preserving insertion
// order. Safe for concurrent use so registration race tests can exercise it.
type stubUserRepo struct {
	mu     sync.Mutex
	users  []*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == identifier || u.Email == strings.ToLower(identifier) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == email {
			return nil, domain.ErrDuplicateUser
		}
	}
	stored := cloneUser(user)
	stored.Email = email
	r.nextID++
	stored.ID = fmt.Sprintf("u%d", r.nextID)
	r.users = append(r.users, stored)
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) List(_ context.Context, offset, limit int64) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= int64(len(r.users)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(r.users)) {
		end = int64(len(r.users))
	}
	out := make([]*domain.User, 0, end-offset)
	for _, u := range r.users[offset:end] {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// seedUser registers a user directly through the repo with a real hash.
func seedUser(t *testing.T, repo *stubUserRepo, username, email, password, role string, disabled bool) {
	t.Helper()
	hash, err := testHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, err = repo.Create(context.Background(), &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		Role:           role,
		Disabled:       disabled,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, testHasher(), NewTokenService("secret"), time.Hour)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw1", domain.RoleGuest, false)
	svc := newTestAuthService(repo)

	token, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	subject, err := NewTokenService("secret").Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw1", domain.RoleGuest, false)
	svc := newTestAuthService(repo)

	// Email matching is case-insensitive.
	if _, err := svc.Login(context.Background(), "Alice@Example.com", "pw1"); err != nil {
		t.Fatalf("login by email: %v", err)
	}
}

func TestAuthService_Login_UsernameCaseSensitive(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw1", domain.RoleGuest, false)
	svc := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "Alice", "pw1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong-case username, got %v", err)
	}
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw1", domain.RoleGuest, false)
	svc := newTestAuthService(repo)

	_, errUnknown := svc.Login(context.Background(), "nobody", "pw1")
	_, errWrongPw := svc.Login(context.Background(), "alice", "wrong")

	if errUnknown != domain.ErrInvalidCredentials || errWrongPw != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", errUnknown, errWrongPw)
	}
}

func TestAuthService_Login_DisabledUser(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "mallory", "m@example.com", "pw1", domain.RoleGuest, true)
	svc := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "mallory", "pw1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for disabled user, got %v", err)
	}
}

func TestAuthService_LoginAsGuest(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	token, err := svc.LoginAsGuest(context.Background())
	if err != nil {
		t.Fatalf("guest login: %v", err)
	}

	subject, err := NewTokenService("secret").Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject != domain.GuestSubject {
		t.Fatalf("expected guest subject, got %q", subject)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw1", domain.RoleAdmin, false)
	svc := newTestAuthService(repo)

	token, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), token)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Username != "alice" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_CurrentUser_ExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw1", domain.RoleGuest, false)
	svc := newTestAuthService(repo)

	expired, err := NewTokenService("secret").Issue("alice", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.CurrentUser(context.Background(), expired); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_CurrentUser_DeletedUser(t *testing.T) {
	// Token is valid but its subject has no backing record.
	svc := newTestAuthService(newStubUserRepo())

	token, err := NewTokenService("secret").Issue("ghost", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.CurrentUser(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for deleted user, got %v", err)
	}
}

func TestAuthService_RequireAdmin(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	admin := &domain.User{Username: "root", Role: domain.RoleAdmin}
	got, err := svc.RequireAdmin(admin)
	if err != nil {
		t.Fatalf("require admin: %v", err)
	}
	if got != admin {
		t.Fatalf("expected user passed through unchanged")
	}

	if _, err := svc.RequireAdmin(&domain.User{Username: "bob", Role: domain.RoleGuest}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for guest, got %v", err)
	}
	if _, err := svc.RequireAdmin(nil); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for nil user, got %v", err)
	}
}
