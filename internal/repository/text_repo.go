package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack-backend/internal/models"
)

type TextRepo struct {
	pool *pgxpool.Pool
}

func NewTextRepo(pool *pgxpool.Pool) *TextRepo {
	return &TextRepo{pool: pool}
}

func (r *TextRepo) Create(ctx context.Context, text *models.Text) error {
	text.ID = uuid.New()
	query := `INSERT INTO texts (id, lesson_id, title) VALUES ($1, $2, $3) RETURNING created_at`

	return r.pool.QueryRow(ctx, query, text.ID, text.LessonID, text.Title).Scan(&text.CreatedAt)
}

func (r *TextRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Text, error) {
	text := &models.Text{}
	query := `SELECT id, lesson_id, title, created_at FROM texts WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&text.ID, &text.LessonID, &text.Title, &text.CreatedAt)
	if err != nil {
		return nil, err
	}
	return text, nil
}

func (r *TextRepo) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Text, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, lesson_id, title, created_at
		 FROM texts WHERE lesson_id = $1 ORDER BY created_at`, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	texts := make([]*models.Text, 0)
	for rows.Next() {
		text := &models.Text{}
		if err := rows.Scan(&text.ID, &text.LessonID, &text.Title, &text.CreatedAt); err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}

	return texts, rows.Err()
}

func (r *TextRepo) Update(ctx context.Context, text *models.Text) error {
	_, err := r.pool.Exec(ctx, "UPDATE texts SET title = $1 WHERE id = $2", text.Title, text.ID)
	return err
}

func (r *TextRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM texts WHERE id = $1", id)
	return err
}
