package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studytrack-backend/internal/models"
	"studytrack-backend/internal/services"
)

type ParagraphHandler struct {
	paragraphService *services.ParagraphService
}

func NewParagraphHandler(paragraphService *services.ParagraphService) *ParagraphHandler {
	return &ParagraphHandler{paragraphService: paragraphService}
}

func (h *ParagraphHandler) Create(w http.ResponseWriter, r *http.Request) {
	textID, err := uuid.Parse(chi.URLParam(r, "textID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid text ID"})
		return
	}

	var req models.ParagraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	paragraph, err := h.paragraphService.Create(r.Context(), textID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, paragraph)
}

func (h *ParagraphHandler) ListByText(w http.ResponseWriter, r *http.Request) {
	textID, err := uuid.Parse(chi.URLParam(r, "textID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid text ID"})
		return
	}

	paragraphs, err := h.paragraphService.ListByText(r.Context(), textID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paragraphs)
}

func (h *ParagraphHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid paragraph ID"})
		return
	}

	var req models.ParagraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	paragraph, err := h.paragraphService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paragraph)
}

func (h *ParagraphHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid paragraph ID"})
		return
	}

	if err := h.paragraphService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
