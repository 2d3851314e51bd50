package handlers

import (
	"encoding/json"
	"net/http"

	"studytrack-backend/internal/models"
	"studytrack-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: e.Message})
	case *services.ConflictError:
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Message: e.Message})
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Message: e.Message})
	case *services.UnauthorizedError:
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Message: e.Message})
	case *services.ForbiddenError:
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Message: e.Message})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: "An unexpected error occurred"})
	}
}
