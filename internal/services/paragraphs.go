package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type paragraphRepository interface {
	Create(ctx context.Context, paragraph *models.Paragraph) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Paragraph, error)
	ListByText(ctx context.Context, textID uuid.UUID) ([]*models.Paragraph, error)
	Update(ctx context.Context, paragraph *models.Paragraph) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParagraphService struct {
	paragraphs paragraphRepository
	texts      textRepository
}

func NewParagraphService(paragraphs paragraphRepository, texts textRepository) *ParagraphService {
	return &ParagraphService{paragraphs: paragraphs, texts: texts}
}

func (s *ParagraphService) Create(ctx context.Context, textID uuid.UUID, req models.ParagraphRequest) (*models.Paragraph, error) {
	if err := s.resolveText(ctx, textID); err != nil {
		return nil, err
	}

	if req.Description == "" {
		return nil, &ValidationError{Message: "Description is a required field"}
	}

	paragraph := &models.Paragraph{TextID: textID, Description: req.Description}
	if err := s.paragraphs.Create(ctx, paragraph); err != nil {
		return nil, err
	}
	return paragraph, nil
}

func (s *ParagraphService) ListByText(ctx context.Context, textID uuid.UUID) ([]*models.Paragraph, error) {
	if err := s.resolveText(ctx, textID); err != nil {
		return nil, err
	}
	return s.paragraphs.ListByText(ctx, textID)
}

// Update mutates only the description; paragraphs carry no other mutable field.
func (s *ParagraphService) Update(ctx context.Context, id uuid.UUID, req models.ParagraphRequest) (*models.Paragraph, error) {
	paragraph, err := s.resolveParagraph(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		paragraph.Description = req.Description
	}

	if err := s.paragraphs.Update(ctx, paragraph); err != nil {
		return nil, err
	}
	return paragraph, nil
}

func (s *ParagraphService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.resolveParagraph(ctx, id); err != nil {
		return err
	}
	return s.paragraphs.Delete(ctx, id)
}

func (s *ParagraphService) resolveText(ctx context.Context, id uuid.UUID) error {
	if _, err := s.texts.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "Text not found"}
		}
		return err
	}
	return nil
}

func (s *ParagraphService) resolveParagraph(ctx context.Context, id uuid.UUID) (*models.Paragraph, error) {
	paragraph, err := s.paragraphs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Paragraph not found"}
		}
		return nil, err
	}
	return paragraph, nil
}
