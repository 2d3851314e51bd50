package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studytrack-backend/internal/models"
	"studytrack-backend/internal/services"
)

type LessonHandler struct {
	lessonService *services.LessonService
}

func NewLessonHandler(lessonService *services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	studyTopicID, err := uuid.Parse(chi.URLParam(r, "studyTopicID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid study topic ID"})
		return
	}

	var req models.LessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	lesson, err := h.lessonService.Create(r.Context(), studyTopicID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lesson)
}

func (h *LessonHandler) ListByStudyTopic(w http.ResponseWriter, r *http.Request) {
	studyTopicID, err := uuid.Parse(chi.URLParam(r, "studyTopicID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid study topic ID"})
		return
	}

	lessons, err := h.lessonService.ListByStudyTopic(r.Context(), studyTopicID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lessons)
}

func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid lesson ID"})
		return
	}

	var req models.LessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	lesson, err := h.lessonService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lesson)
}

func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid lesson ID"})
		return
	}

	if err := h.lessonService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
