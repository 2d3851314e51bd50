package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studytrack-backend/internal/middleware"
	"studytrack-backend/internal/models"
	"studytrack-backend/internal/services"
)

type StudyTopicHandler struct {
	topicService *services.StudyTopicService
}

func NewStudyTopicHandler(topicService *services.StudyTopicService) *StudyTopicHandler {
	return &StudyTopicHandler{topicService: topicService}
}

func (h *StudyTopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.StudyTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	topic, err := h.topicService.Create(r.Context(), middleware.GetClaim(r.Context()), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, topic)
}

func (h *StudyTopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topics)
}

func (h *StudyTopicHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid study topic ID"})
		return
	}

	topic, err := h.topicService.Retrieve(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topic)
}

func (h *StudyTopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid study topic ID"})
		return
	}

	var req models.StudyTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	topic, err := h.topicService.Update(r.Context(), middleware.GetClaim(r.Context()), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topic)
}

func (h *StudyTopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid study topic ID"})
		return
	}

	if err := h.topicService.Delete(r.Context(), middleware.GetClaim(r.Context()), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
