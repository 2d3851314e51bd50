package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack-backend/internal/models"
)

type TimelineRepo struct {
	pool *pgxpool.Pool
}

func NewTimelineRepo(pool *pgxpool.Pool) *TimelineRepo {
	return &TimelineRepo{pool: pool}
}

func (r *TimelineRepo) Create(ctx context.Context, timeline *models.Timeline) error {
	timeline.ID = uuid.New()
	query := `INSERT INTO timelines (id, video_id, description, time)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		timeline.ID, timeline.VideoID, timeline.Description, timeline.Time,
	).Scan(&timeline.CreatedAt)
}

func (r *TimelineRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Timeline, error) {
	timeline := &models.Timeline{}
	query := `SELECT id, video_id, description, time, created_at FROM timelines WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&timeline.ID, &timeline.VideoID, &timeline.Description, &timeline.Time, &timeline.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return timeline, nil
}

func (r *TimelineRepo) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*models.Timeline, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, video_id, description, time, created_at
		 FROM timelines WHERE video_id = $1 ORDER BY created_at`, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timelines := make([]*models.Timeline, 0)
	for rows.Next() {
		timeline := &models.Timeline{}
		if err := rows.Scan(
			&timeline.ID, &timeline.VideoID, &timeline.Description, &timeline.Time, &timeline.CreatedAt,
		); err != nil {
			return nil, err
		}
		timelines = append(timelines, timeline)
	}

	return timelines, rows.Err()
}

func (r *TimelineRepo) Update(ctx context.Context, timeline *models.Timeline) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE timelines SET description = $1, time = $2 WHERE id = $3",
		timeline.Description, timeline.Time, timeline.ID,
	)
	return err
}

func (r *TimelineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM timelines WHERE id = $1", id)
	return err
}
