package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// MediaRepository encapsulates gallery item persistence.
type MediaRepository interface {
	Create(ctx context.Context, item *domain.Media) error
	Update(ctx context.Context, item *domain.Media) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Media, error)
	List(ctx context.Context, published *bool) ([]domain.Media, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Media, error)
}

type mediaRepository struct {
	pool *pgxpool.Pool
}

// NewMediaRepository returns a Postgres-backed implementation.
func NewMediaRepository(pool *pgxpool.Pool) MediaRepository {
	return &mediaRepository{pool: pool}
}

const mediaColumns = `id, title, category, url, thumbnail_url, description, published, created_at, updated_at`

func (r *mediaRepository) Create(ctx context.Context, item *domain.Media) error {
	const query = `
        INSERT INTO media (id, title, category, url, thumbnail_url, description, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.ID,
		item.Title,
		item.Category,
		item.URL,
		item.ThumbnailURL,
		item.Description,
		item.Published,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *mediaRepository) Update(ctx context.Context, item *domain.Media) error {
	const query = `
        UPDATE media SET title=$1, category=$2, url=$3, thumbnail_url=$4, description=$5, published=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		item.Title,
		item.Category,
		item.URL,
		item.ThumbnailURL,
		item.Description,
		item.Published,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM media WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE id=$1`

	var item domain.Media
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Category,
		&item.URL,
		&item.ThumbnailURL,
		&item.Description,
		&item.Published,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) List(ctx context.Context, published *bool) ([]domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media`
	args := []any{}
	if published != nil {
		query += ` WHERE published=$1`
		args = append(args, *published)
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, args...)
}

func (r *mediaRepository) ListByCategory(ctx context.Context, category string) ([]domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE category=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, category)
}

func (r *mediaRepository) list(ctx context.Context, query string, args ...any) ([]domain.Media, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Media{}
	for rows.Next() {
		var item domain.Media
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Category,
			&item.URL,
			&item.ThumbnailURL,
			&item.Description,
			&item.Published,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
