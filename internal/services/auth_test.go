package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"studytrack-backend/internal/middleware"
	"studytrack-backend/internal/models"
)

type stubUserRepo struct {
	users       map[uuid.UUID]*models.User
	byEmail     map[string]*models.User
	updated     *models.User
	deactivated []uuid.UUID
	created     *models.User
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	s := &stubUserRepo{
		users:   make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
	}
	for _, u := range users {
		s.users[u.ID] = u
		s.byEmail[u.Email] = u
	}
	return s
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.IsActive = true
	s.created = user
	s.users[user.ID] = user
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) List(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	s.updated = user
	return nil
}

func (s *stubUserRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	s.deactivated = append(s.deactivated, id)
	if u, ok := s.users[id]; ok {
		u.IsActive = false
	}
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func activeUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	return &models.User{
		ID:           uuid.New(),
		Name:         "Lucas",
		Email:        email,
		PasswordHash: mustHash(t, password),
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := activeUser(t, "lucas@mail.com", "12345")
	svc := NewAuthService(newStubUserRepo(user), middleware.NewJWTAuth("test-secret"))

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "lucas@mail.com",
		Password: "12345",
	})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, resp.User.ID)
	}
}

// Every login failure must produce the identical generic message regardless of
// which precondition failed.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	user := activeUser(t, "lucas@mail.com", "12345")
	inactive := activeUser(t, "felipe@mail.com", "12345")
	inactive.IsActive = false

	svc := NewAuthService(newStubUserRepo(user, inactive), middleware.NewJWTAuth("test-secret"))

	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{"unknown email", models.LoginRequest{Email: "maria@mail.com", Password: "12345"}},
		{"wrong password", models.LoginRequest{Email: "lucas@mail.com", Password: "12346"}},
		{"deactivated account", models.LoginRequest{Email: "felipe@mail.com", Password: "12345"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.req)

			forbidden, ok := err.(*ForbiddenError)
			if !ok {
				t.Fatalf("expected ForbiddenError, got %T (%v)", err, err)
			}
			if forbidden.Message != "Invalid e-mail or password" {
				t.Fatalf("unexpected message: %q", forbidden.Message)
			}
		})
	}
}
