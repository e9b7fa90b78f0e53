package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// HeroSlideRepository encapsulates hero slide persistence.
type HeroSlideRepository interface {
	Create(ctx context.Context, slide *domain.HeroSlide) error
	Update(ctx context.Context, slide *domain.HeroSlide) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.HeroSlide, error)
	List(ctx context.Context, published *bool) ([]domain.HeroSlide, error)
}

type heroSlideRepository struct {
	pool *pgxpool.Pool
}

// NewHeroSlideRepository returns a Postgres-backed implementation.
func NewHeroSlideRepository(pool *pgxpool.Pool) HeroSlideRepository {
	return &heroSlideRepository{pool: pool}
}

func (r *heroSlideRepository) Create(ctx context.Context, slide *domain.HeroSlide) error {
	const query = `
        INSERT INTO hero_slides (id, title, subtitle, description, background_image, cta_text, cta_link, slide_order, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		slide.ID,
		slide.Title,
		slide.Subtitle,
		slide.Description,
		slide.BackgroundImage,
		slide.CtaText,
		slide.CtaLink,
		slide.Order,
		slide.Published,
	).Scan(&slide.CreatedAt, &slide.UpdatedAt)
}

func (r *heroSlideRepository) Update(ctx context.Context, slide *domain.HeroSlide) error {
	const query = `
        UPDATE hero_slides
        SET title=$1, subtitle=$2, description=$3, background_image=$4, cta_text=$5, cta_link=$6, slide_order=$7, published=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		slide.Title,
		slide.Subtitle,
		slide.Description,
		slide.BackgroundImage,
		slide.CtaText,
		slide.CtaLink,
		slide.Order,
		slide.Published,
		slide.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *heroSlideRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hero_slides WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *heroSlideRepository) GetByID(ctx context.Context, id string) (*domain.HeroSlide, error) {
	const query = `
        SELECT id, title, subtitle, description, background_image, cta_text, cta_link, slide_order, published, created_at, updated_at
        FROM hero_slides WHERE id=$1`

	var slide domain.HeroSlide
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&slide.ID,
		&slide.Title,
		&slide.Subtitle,
		&slide.Description,
		&slide.BackgroundImage,
		&slide.CtaText,
		&slide.CtaLink,
		&slide.Order,
		&slide.Published,
		&slide.CreatedAt,
		&slide.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *heroSlideRepository) List(ctx context.Context, published *bool) ([]domain.HeroSlide, error) {
	query := `
        SELECT id, title, subtitle, description, background_image, cta_text, cta_link, slide_order, published, created_at, updated_at
        FROM hero_slides`
	args := []any{}
	if published != nil {
		query += ` WHERE published=$1`
		args = append(args, *published)
	}
	query += ` ORDER BY slide_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slides := []domain.HeroSlide{}
	for rows.Next() {
		var slide domain.HeroSlide
		if err := rows.Scan(
			&slide.ID,
			&slide.Title,
			&slide.Subtitle,
			&slide.Description,
			&slide.BackgroundImage,
			&slide.CtaText,
			&slide.CtaLink,
			&slide.Order,
			&slide.Published,
			&slide.CreatedAt,
			&slide.UpdatedAt,
		); err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	return slides, rows.Err()
}
