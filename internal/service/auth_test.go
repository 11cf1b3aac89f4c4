package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/model"
)

// ============================================================================
// Mock UserRepository
// ============================================================================

type mockUserRepo struct {
	users      map[string]*model.User // keyed by ID
	byEmail    map[string]*model.User
	createErr  error
	getErr     error
	nextID     int
	createSeen []*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.byEmail[user.Email]; exists {
		return database.ErrDuplicate
	}
	m.nextID++
	user.ID = fmt.Sprintf("user:%03d", m.nextID)
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	m.byEmail[user.Email] = user
	m.createSeen = append(m.createSeen, user)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	result := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func newTestAuthService(repo UserRepository) *AuthService {
	return NewAuthService(AuthServiceConfig{
		UserRepo: repo,
		TokenService: NewTokenService(TokenServiceConfig{
			Secret: "test-secret",
			Issuer: "tipstream-test",
		}),
	})
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.ID == "" {
		t.Error("expected user ID to be set")
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.User.Avatar == "" {
		t.Error("expected a default avatar")
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.createSeen[0]
	if stored.Hash == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Hash), []byte("secret123")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ada",
		Email:    "  Ada@Example.COM ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", result.User.Email)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(newMockUserRepo())

	cases := []struct {
		name string
		req  RegisterRequest
		want error
	}{
		{"missing name", RegisterRequest{Email: "a@b.c", Password: "x"}, ErrNameRequired},
		{"missing email", RegisterRequest{Name: "Ada", Password: "x"}, ErrEmailRequired},
		{"missing password", RegisterRequest{Name: "Ada", Email: "a@b.c"}, ErrPasswordRequired},
		{"blank name", RegisterRequest{Name: "   ", Email: "a@b.c", Password: "x"}, ErrNameRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	req := RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail_SameErrorAsWrongPassword(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ============================================================================
// Lookup Tests
// ============================================================================

func TestGetUserByID_NotFound(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(newMockUserRepo())

	_, err := svc.GetUserByID(context.Background(), "user:missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByID_MalformedID_MapsToNotFound(t *testing.T) {
	t.Parallel()
	repo := newMockUserRepo()
	repo.getErr = database.ErrInvalidID
	svc := newTestAuthService(repo)

	_, err := svc.GetUserByID(context.Background(), "not a record id")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
