package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack-backend/internal/models"
)

type ParagraphRepo struct {
	pool *pgxpool.Pool
}

func NewParagraphRepo(pool *pgxpool.Pool) *ParagraphRepo {
	return &ParagraphRepo{pool: pool}
}

func (r *ParagraphRepo) Create(ctx context.Context, paragraph *models.Paragraph) error {
	paragraph.ID = uuid.New()
	query := `INSERT INTO paragraphs (id, text_id, description) VALUES ($1, $2, $3) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		paragraph.ID, paragraph.TextID, paragraph.Description,
	).Scan(&paragraph.CreatedAt)
}

func (r *ParagraphRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Paragraph, error) {
	paragraph := &models.Paragraph{}
	query := `SELECT id, text_id, description, created_at FROM paragraphs WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&paragraph.ID, &paragraph.TextID, &paragraph.Description, &paragraph.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return paragraph, nil
}

func (r *ParagraphRepo) ListByText(ctx context.Context, textID uuid.UUID) ([]*models.Paragraph, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, text_id, description, created_at
		 FROM paragraphs WHERE text_id = $1 ORDER BY created_at`, textID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paragraphs := make([]*models.Paragraph, 0)
	for rows.Next() {
		paragraph := &models.Paragraph{}
		if err := rows.Scan(
			&paragraph.ID, &paragraph.TextID, &paragraph.Description, &paragraph.CreatedAt,
		); err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, paragraph)
	}

	return paragraphs, rows.Err()
}

func (r *ParagraphRepo) Update(ctx context.Context, paragraph *models.Paragraph) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE paragraphs SET description = $1 WHERE id = $2",
		paragraph.Description, paragraph.ID,
	)
	return err
}

func (r *ParagraphRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM paragraphs WHERE id = $1", id)
	return err
}
