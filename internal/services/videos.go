package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type videoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VideoService struct {
	videos  videoRepository
	lessons lessonRepository
}

func NewVideoService(videos videoRepository, lessons lessonRepository) *VideoService {
	return &VideoService{videos: videos, lessons: lessons}
}

func (s *VideoService) Create(ctx context.Context, lessonID uuid.UUID, req models.VideoRequest) (*models.Video, error) {
	if err := s.resolveLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	if req.Title == "" || req.URL == "" {
		return nil, &ValidationError{Message: "Title and url are required fields"}
	}

	video := &models.Video{LessonID: lessonID, Title: req.Title, URL: req.URL}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Video, error) {
	if err := s.resolveLesson(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.videos.ListByLesson(ctx, lessonID)
}

func (s *VideoService) Update(ctx context.Context, id uuid.UUID, req models.VideoRequest) (*models.Video, error) {
	video, err := s.resolveVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		video.Title = req.Title
	}
	if req.URL != "" {
		video.URL = req.URL
	}

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.resolveVideo(ctx, id); err != nil {
		return err
	}
	return s.videos.Delete(ctx, id)
}

func (s *VideoService) resolveLesson(ctx context.Context, id uuid.UUID) error {
	if _, err := s.lessons.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "Lesson not found"}
		}
		return err
	}
	return nil
}

func (s *VideoService) resolveVideo(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Video not found"}
		}
		return nil, err
	}
	return video, nil
}
