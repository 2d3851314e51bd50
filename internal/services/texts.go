package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type textRepository interface {
	Create(ctx context.Context, text *models.Text) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Text, error)
	ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Text, error)
	Update(ctx context.Context, text *models.Text) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TextService struct {
	texts   textRepository
	lessons lessonRepository
}

func NewTextService(texts textRepository, lessons lessonRepository) *TextService {
	return &TextService{texts: texts, lessons: lessons}
}

func (s *TextService) Create(ctx context.Context, lessonID uuid.UUID, req models.TextRequest) (*models.Text, error) {
	if err := s.resolveLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, &ValidationError{Message: "Title is a required field"}
	}

	text := &models.Text{LessonID: lessonID, Title: req.Title}
	if err := s.texts.Create(ctx, text); err != nil {
		return nil, err
	}
	return text, nil
}

func (s *TextService) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Text, error) {
	if err := s.resolveLesson(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.texts.ListByLesson(ctx, lessonID)
}

func (s *TextService) Update(ctx context.Context, id uuid.UUID, req models.TextRequest) (*models.Text, error) {
	text, err := s.resolveText(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		text.Title = req.Title
	}

	if err := s.texts.Update(ctx, text); err != nil {
		return nil, err
	}
	return text, nil
}

func (s *TextService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.resolveText(ctx, id); err != nil {
		return err
	}
	return s.texts.Delete(ctx, id)
}

func (s *TextService) resolveLesson(ctx context.Context, id uuid.UUID) error {
	if _, err := s.lessons.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "Lesson not found"}
		}
		return err
	}
	return nil
}

func (s *TextService) resolveText(ctx context.Context, id uuid.UUID) (*models.Text, error) {
	text, err := s.texts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Text not found"}
		}
		return nil, err
	}
	return text, nil
}
