package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/middleware"
	"studytrack-backend/internal/models"
)

type studyTopicRepository interface {
	Create(ctx context.Context, topic *models.StudyTopic) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StudyTopic, error)
	List(ctx context.Context) ([]*models.StudyTopic, error)
	Update(ctx context.Context, topic *models.StudyTopic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudyTopicService struct {
	topics studyTopicRepository
}

func NewStudyTopicService(topics studyTopicRepository) *StudyTopicService {
	return &StudyTopicService{topics: topics}
}

func (s *StudyTopicService) Create(ctx context.Context, claim middleware.Claim, req models.StudyTopicRequest) (*models.StudyTopic, error) {
	if req.Name == "" {
		return nil, &ValidationError{Message: "Name is a required field"}
	}

	topic := &models.StudyTopic{Name: req.Name, OwnerID: claim.UserID}
	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *StudyTopicService) List(ctx context.Context) ([]*models.StudyTopic, error) {
	return s.topics.List(ctx)
}

func (s *StudyTopicService) Retrieve(ctx context.Context, id uuid.UUID) (*models.StudyTopic, error) {
	topic, err := s.topics.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Study topic not found"}
		}
		return nil, err
	}
	return topic, nil
}

func (s *StudyTopicService) Update(ctx context.Context, claim middleware.Claim, id uuid.UUID, req models.StudyTopicRequest) (*models.StudyTopic, error) {
	topic, err := s.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	if claim.UserID != topic.OwnerID && !claim.IsAdmin {
		return nil, &UnauthorizedError{Message: "User is not admin"}
	}

	if req.Name != "" {
		topic.Name = req.Name
	}

	if err := s.topics.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *StudyTopicService) Delete(ctx context.Context, claim middleware.Claim, id uuid.UUID) error {
	topic, err := s.Retrieve(ctx, id)
	if err != nil {
		return err
	}

	if claim.UserID != topic.OwnerID && !claim.IsAdmin {
		return &UnauthorizedError{Message: "User is not admin"}
	}

	return s.topics.Delete(ctx, id)
}
