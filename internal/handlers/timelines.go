package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studytrack-backend/internal/models"
)

type timelineService interface {
	Create(ctx context.Context, videoID uuid.UUID, req models.TimelineRequest) (*models.Timeline, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*models.Timeline, error)
	Update(ctx context.Context, id uuid.UUID, req models.TimelineRequest) (*models.Timeline, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimelineHandler struct {
	timelineService timelineService
}

func NewTimelineHandler(timelineService timelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

func (h *TimelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid video ID"})
		return
	}

	var req models.TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	timeline, err := h.timelineService.Create(r.Context(), videoID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, timeline)
}

func (h *TimelineHandler) ListByVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid video ID"})
		return
	}

	timelines, err := h.timelineService.ListByVideo(r.Context(), videoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, timelines)
}

func (h *TimelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid timeline ID"})
		return
	}

	var req models.TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	timeline, err := h.timelineService.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, timeline)
}

func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid timeline ID"})
		return
	}

	if err := h.timelineService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
