package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// NewsRepository encapsulates news article persistence.
type NewsRepository interface {
	Create(ctx context.Context, article *domain.News) error
	Update(ctx context.Context, article *domain.News) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.News, error)
	List(ctx context.Context, published *bool) ([]domain.News, error)
}

type newsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository returns a Postgres-backed implementation.
func NewNewsRepository(pool *pgxpool.Pool) NewsRepository {
	return &newsRepository{pool: pool}
}

func (r *newsRepository) Create(ctx context.Context, article *domain.News) error {
	const query = `
        INSERT INTO news (id, title, excerpt, content, image_url, published)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		article.ID,
		article.Title,
		article.Excerpt,
		article.Content,
		article.ImageURL,
		article.Published,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
}

func (r *newsRepository) Update(ctx context.Context, article *domain.News) error {
	const query = `
        UPDATE news SET title=$1, excerpt=$2, content=$3, image_url=$4, published=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		article.Title,
		article.Excerpt,
		article.Content,
		article.ImageURL,
		article.Published,
		article.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, id string) (*domain.News, error) {
	const query = `
        SELECT id, title, excerpt, content, image_url, published, created_at, updated_at
        FROM news WHERE id=$1`

	var article domain.News
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Excerpt,
		&article.Content,
		&article.ImageURL,
		&article.Published,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *newsRepository) List(ctx context.Context, published *bool) ([]domain.News, error) {
	query := `
        SELECT id, title, excerpt, content, image_url, published, created_at, updated_at
        FROM news`
	args := []any{}
	if published != nil {
		query += ` WHERE published=$1`
		args = append(args, *published)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []domain.News{}
	for rows.Next() {
		var article domain.News
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Excerpt,
			&article.Content,
			&article.ImageURL,
			&article.Published,
			&article.CreatedAt,
			&article.UpdatedAt,
		); err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
