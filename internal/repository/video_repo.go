package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack-backend/internal/models"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

func (r *VideoRepo) Create(ctx context.Context, video *models.Video) error {
	video.ID = uuid.New()
	query := `INSERT INTO videos (id, lesson_id, title, url)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		video.ID, video.LessonID, video.Title, video.URL,
	).Scan(&video.CreatedAt)
}

func (r *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	video := &models.Video{}
	query := `SELECT id, lesson_id, title, url, created_at FROM videos WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&video.ID, &video.LessonID, &video.Title, &video.URL, &video.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return video, nil
}

func (r *VideoRepo) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, lesson_id, title, url, created_at
		 FROM videos WHERE lesson_id = $1 ORDER BY created_at`, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]*models.Video, 0)
	for rows.Next() {
		video := &models.Video{}
		if err := rows.Scan(
			&video.ID, &video.LessonID, &video.Title, &video.URL, &video.CreatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	return videos, rows.Err()
}

func (r *VideoRepo) Update(ctx context.Context, video *models.Video) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE videos SET title = $1, url = $2 WHERE id = $3",
		video.Title, video.URL, video.ID,
	)
	return err
}

func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM videos WHERE id = $1", id)
	return err
}
