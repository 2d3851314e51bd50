package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type stubUserFetcher struct {
	user *models.User
}

func (s *stubUserFetcher) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.user == nil {
		return nil, pgx.ErrNoRows
	}
	return s.user, nil
}

func requestWithClaim(userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/study-topics", nil)
	ctx := context.WithValue(req.Context(), ClaimKey, Claim{UserID: userID})
	return req.WithContext(ctx)
}

func TestActivityGate_ActiveUser(t *testing.T) {
	userID := uuid.New()
	gate := NewActivityGate(&stubUserFetcher{user: &models.User{ID: userID, IsActive: true}})

	reached := false
	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithClaim(userID))

	if !reached {
		t.Fatal("expected handler to be reached for an active user")
	}
}

func TestActivityGate_DeactivatedUser(t *testing.T) {
	userID := uuid.New()
	gate := NewActivityGate(&stubUserFetcher{user: &models.User{ID: userID, IsActive: false}})

	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached for a deactivated user")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithClaim(userID))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if msg := decodeMessage(t, rr); msg != "User not found" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestActivityGate_MissingUser(t *testing.T) {
	gate := NewActivityGate(&stubUserFetcher{})

	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached for a missing user")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithClaim(uuid.New()))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if msg := decodeMessage(t, rr); msg != "User not found" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
