package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"studytrack-backend/internal/models"
)

type userFetcher interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ActivityGate re-checks the authenticated account against current storage.
// Tokens are stateless, so an account deactivated after issuance would
// otherwise keep working until expiry.
type ActivityGate struct {
	users userFetcher
}

func NewActivityGate(users userFetcher) *ActivityGate {
	return &ActivityGate{users: users}
}

func (g *ActivityGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claim := GetClaim(r.Context())

		user, err := g.users.GetByID(r.Context(), claim.UserID)
		if err != nil || !user.IsActive {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		next.ServeHTTP(w, r)
	})
}
