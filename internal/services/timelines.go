package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type timelineRepository interface {
	Create(ctx context.Context, timeline *models.Timeline) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Timeline, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*models.Timeline, error)
	Update(ctx context.Context, timeline *models.Timeline) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimelineService struct {
	timelines timelineRepository
	videos    videoRepository
}

func NewTimelineService(timelines timelineRepository, videos videoRepository) *TimelineService {
	return &TimelineService{timelines: timelines, videos: videos}
}

// Create resolves the parent video first, then validates the field pair.
// Description and time are required together; either one missing produces the
// single combined error. The 401 status is kept for compatibility with
// existing clients, it is not an authentication failure.
func (s *TimelineService) Create(ctx context.Context, videoID uuid.UUID, req models.TimelineRequest) (*models.Timeline, error) {
	if err := s.resolveVideo(ctx, videoID); err != nil {
		return nil, err
	}

	if err := validateTimelineFields(req); err != nil {
		return nil, err
	}

	timeline := &models.Timeline{
		VideoID:     videoID,
		Description: *req.Description,
		Time:        *req.Time,
	}
	if err := s.timelines.Create(ctx, timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}

func (s *TimelineService) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*models.Timeline, error) {
	if err := s.resolveVideo(ctx, videoID); err != nil {
		return nil, err
	}
	return s.timelines.ListByVideo(ctx, videoID)
}

func (s *TimelineService) Update(ctx context.Context, id uuid.UUID, req models.TimelineRequest) (*models.Timeline, error) {
	timeline, err := s.resolveTimeline(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateTimelineFields(req); err != nil {
		return nil, err
	}

	timeline.Description = *req.Description
	timeline.Time = *req.Time

	if err := s.timelines.Update(ctx, timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}

func (s *TimelineService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.resolveTimeline(ctx, id); err != nil {
		return err
	}
	return s.timelines.Delete(ctx, id)
}

func validateTimelineFields(req models.TimelineRequest) error {
	if req.Description == nil || *req.Description == "" || req.Time == nil || *req.Time == "" {
		return &UnauthorizedError{Message: "Time and description are required fields"}
	}
	return nil
}

func (s *TimelineService) resolveVideo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.videos.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "Video not found"}
		}
		return err
	}
	return nil
}

// A missing timeline reports "Chapter not found"; the message is part of the
// published response contract.
func (s *TimelineService) resolveTimeline(ctx context.Context, id uuid.UUID) (*models.Timeline, error) {
	timeline, err := s.timelines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Chapter not found"}
		}
		return nil, err
	}
	return timeline, nil
}
