package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, published *bool) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a Postgres-backed implementation.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (id, title, description, location, image_url, starts_at, ends_at, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.ImageURL,
		event.StartsAt,
		event.EndsAt,
		event.Published,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET title=$1, description=$2, location=$3, image_url=$4, starts_at=$5, ends_at=$6, published=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Location,
		event.ImageURL,
		event.StartsAt,
		event.EndsAt,
		event.Published,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `
        SELECT id, title, description, location, image_url, starts_at, ends_at, published, created_at, updated_at
        FROM events WHERE id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.ImageURL,
		&event.StartsAt,
		&event.EndsAt,
		&event.Published,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, published *bool) ([]domain.Event, error) {
	query := `
        SELECT id, title, description, location, image_url, starts_at, ends_at, published, created_at, updated_at
        FROM events`
	args := []any{}
	if published != nil {
		query += ` WHERE published=$1`
		args = append(args, *published)
	}
	query += ` ORDER BY starts_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.ImageURL,
			&event.StartsAt,
			&event.EndsAt,
			&event.Published,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
