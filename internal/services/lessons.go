package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type lessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lesson, error)
	ListByStudyTopic(ctx context.Context, studyTopicID uuid.UUID) ([]*models.Lesson, error)
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LessonService struct {
	lessons lessonRepository
	topics  studyTopicRepository
}

func NewLessonService(lessons lessonRepository, topics studyTopicRepository) *LessonService {
	return &LessonService{lessons: lessons, topics: topics}
}

// Create resolves the parent study topic before anything else; a missing
// ancestor fails here and the lesson table is never touched.
func (s *LessonService) Create(ctx context.Context, studyTopicID uuid.UUID, req models.LessonRequest) (*models.Lesson, error) {
	if _, err := s.resolveStudyTopic(ctx, studyTopicID); err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, &ValidationError{Message: "Title is a required field"}
	}

	lesson := &models.Lesson{
		StudyTopicID: studyTopicID,
		Title:        req.Title,
		Description:  req.Description,
	}
	if err := s.lessons.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) ListByStudyTopic(ctx context.Context, studyTopicID uuid.UUID) ([]*models.Lesson, error) {
	if _, err := s.resolveStudyTopic(ctx, studyTopicID); err != nil {
		return nil, err
	}
	return s.lessons.ListByStudyTopic(ctx, studyTopicID)
}

func (s *LessonService) Update(ctx context.Context, id uuid.UUID, req models.LessonRequest) (*models.Lesson, error) {
	lesson, err := s.resolveLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Description != "" {
		lesson.Description = req.Description
	}

	if err := s.lessons.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.resolveLesson(ctx, id); err != nil {
		return err
	}
	return s.lessons.Delete(ctx, id)
}

func (s *LessonService) resolveStudyTopic(ctx context.Context, id uuid.UUID) (*models.StudyTopic, error) {
	topic, err := s.topics.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Study topic not found"}
		}
		return nil, err
	}
	return topic, nil
}

func (s *LessonService) resolveLesson(ctx context.Context, id uuid.UUID) (*models.Lesson, error) {
	lesson, err := s.lessons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Lesson not found"}
		}
		return nil, err
	}
	return lesson, nil
}
