package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack-backend/internal/models"
)

type StudyTopicRepo struct {
	pool *pgxpool.Pool
}

func NewStudyTopicRepo(pool *pgxpool.Pool) *StudyTopicRepo {
	return &StudyTopicRepo{pool: pool}
}

func (r *StudyTopicRepo) Create(ctx context.Context, topic *models.StudyTopic) error {
	topic.ID = uuid.New()
	query := `INSERT INTO study_topics (id, name, owner_id) VALUES ($1, $2, $3) RETURNING created_at`

	return r.pool.QueryRow(ctx, query, topic.ID, topic.Name, topic.OwnerID).Scan(&topic.CreatedAt)
}

func (r *StudyTopicRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.StudyTopic, error) {
	topic := &models.StudyTopic{}
	query := `SELECT id, name, owner_id, created_at FROM study_topics WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&topic.ID, &topic.Name, &topic.OwnerID, &topic.CreatedAt)
	if err != nil {
		return nil, err
	}
	return topic, nil
}

func (r *StudyTopicRepo) List(ctx context.Context) ([]*models.StudyTopic, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, name, owner_id, created_at FROM study_topics ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []*models.StudyTopic
	for rows.Next() {
		topic := &models.StudyTopic{}
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.OwnerID, &topic.CreatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}

	return topics, rows.Err()
}

func (r *StudyTopicRepo) Update(ctx context.Context, topic *models.StudyTopic) error {
	_, err := r.pool.Exec(ctx, "UPDATE study_topics SET name = $1 WHERE id = $2", topic.Name, topic.ID)
	return err
}

// Delete removes the topic; lessons, videos, timelines, texts and paragraphs
// underneath it go with it via ON DELETE CASCADE.
func (r *StudyTopicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM study_topics WHERE id = $1", id)
	return err
}
