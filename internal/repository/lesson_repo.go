package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack-backend/internal/models"
)

type LessonRepo struct {
	pool *pgxpool.Pool
}

func NewLessonRepo(pool *pgxpool.Pool) *LessonRepo {
	return &LessonRepo{pool: pool}
}

func (r *LessonRepo) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = uuid.New()
	query := `INSERT INTO lessons (id, study_topic_id, title, description)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		lesson.ID, lesson.StudyTopicID, lesson.Title, lesson.Description,
	).Scan(&lesson.CreatedAt)
}

func (r *LessonRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lesson, error) {
	lesson := &models.Lesson{}
	query := `SELECT id, study_topic_id, title, description, created_at FROM lessons WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lesson.ID, &lesson.StudyTopicID, &lesson.Title, &lesson.Description, &lesson.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *LessonRepo) ListByStudyTopic(ctx context.Context, studyTopicID uuid.UUID) ([]*models.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, study_topic_id, title, description, created_at
		 FROM lessons WHERE study_topic_id = $1 ORDER BY created_at`, studyTopicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := make([]*models.Lesson, 0)
	for rows.Next() {
		lesson := &models.Lesson{}
		if err := rows.Scan(
			&lesson.ID, &lesson.StudyTopicID, &lesson.Title, &lesson.Description, &lesson.CreatedAt,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	return lessons, rows.Err()
}

func (r *LessonRepo) Update(ctx context.Context, lesson *models.Lesson) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE lessons SET title = $1, description = $2 WHERE id = $3",
		lesson.Title, lesson.Description, lesson.ID,
	)
	return err
}

func (r *LessonRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM lessons WHERE id = $1", id)
	return err
}
