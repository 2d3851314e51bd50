package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"studytrack-backend/internal/middleware"
	"studytrack-backend/internal/models"
)

type UserService struct {
	users userRepository
}

func NewUserService(users userRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "Name, email and password are required fields"}
	}

	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, &ConflictError{Message: "Email already exists"}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context, claim middleware.Claim) ([]*models.User, error) {
	if !claim.IsAdmin {
		return nil, &UnauthorizedError{Message: "User is not admin"}
	}
	return s.users.List(ctx)
}

func (s *UserService) Retrieve(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial user update. The field allow-list is checked against
// the raw payload keys before the ownership check, so a request carrying any
// unknown key fails wholesale regardless of who sent it.
func (s *UserService) Update(ctx context.Context, claim middleware.Claim, id uuid.UUID, payload map[string]json.RawMessage) (*models.User, error) {
	for key := range payload {
		if key != "name" && key != "email" && key != "password" {
			return nil, &ValidationError{Message: "Only the name, email and password fields can be changed"}
		}
	}

	if claim.UserID != id && !claim.IsAdmin {
		return nil, &UnauthorizedError{Message: "User is not admin"}
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	// Omitted fields keep their current values
	if raw, ok := payload["name"]; ok {
		if err := json.Unmarshal(raw, &user.Name); err != nil {
			return nil, &ValidationError{Message: "Invalid name field"}
		}
	}
	if raw, ok := payload["email"]; ok {
		if err := json.Unmarshal(raw, &user.Email); err != nil {
			return nil, &ValidationError{Message: "Invalid email field"}
		}
	}
	if raw, ok := payload["password"]; ok {
		var password string
		if err := json.Unmarshal(raw, &password); err != nil {
			return nil, &ValidationError{Message: "Invalid password field"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete deactivates the account rather than removing the row. Deleting an
// already-deactivated user reports not found, never success.
func (s *UserService) Delete(ctx context.Context, claim middleware.Claim, id uuid.UUID) error {
	if claim.UserID != id && !claim.IsAdmin {
		return &UnauthorizedError{Message: "User is not admin"}
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "User not found"}
		}
		return err
	}

	if !user.IsActive {
		return &NotFoundError{Message: "User not found"}
	}

	return s.users.Deactivate(ctx, id)
}
