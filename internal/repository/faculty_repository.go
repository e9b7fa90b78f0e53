package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// FacultyRepository encapsulates faculty profile persistence.
type FacultyRepository interface {
	Create(ctx context.Context, member *domain.Faculty) error
	Update(ctx context.Context, member *domain.Faculty) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Faculty, error)
	List(ctx context.Context) ([]domain.Faculty, error)
}

type facultyRepository struct {
	pool *pgxpool.Pool
}

// NewFacultyRepository returns a Postgres-backed implementation.
func NewFacultyRepository(pool *pgxpool.Pool) FacultyRepository {
	return &facultyRepository{pool: pool}
}

func (r *facultyRepository) Create(ctx context.Context, member *domain.Faculty) error {
	const query = `
        INSERT INTO faculty (id, name, position, qualification, specialization, email, phone, image_url, display_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		member.ID,
		member.Name,
		member.Position,
		member.Qualification,
		member.Specialization,
		member.Email,
		member.Phone,
		member.ImageURL,
		member.Order,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
}

func (r *facultyRepository) Update(ctx context.Context, member *domain.Faculty) error {
	const query = `
        UPDATE faculty
        SET name=$1, position=$2, qualification=$3, specialization=$4, email=$5, phone=$6, image_url=$7, display_order=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		member.Name,
		member.Position,
		member.Qualification,
		member.Specialization,
		member.Email,
		member.Phone,
		member.ImageURL,
		member.Order,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *facultyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM faculty WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id string) (*domain.Faculty, error) {
	const query = `
        SELECT id, name, position, qualification, specialization, email, phone, image_url, display_order, created_at, updated_at
        FROM faculty WHERE id=$1`

	var member domain.Faculty
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Position,
		&member.Qualification,
		&member.Specialization,
		&member.Email,
		&member.Phone,
		&member.ImageURL,
		&member.Order,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *facultyRepository) List(ctx context.Context) ([]domain.Faculty, error) {
	const query = `
        SELECT id, name, position, qualification, specialization, email, phone, image_url, display_order, created_at, updated_at
        FROM faculty ORDER BY display_order ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Faculty{}
	for rows.Next() {
		var member domain.Faculty
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Position,
			&member.Qualification,
			&member.Specialization,
			&member.Email,
			&member.Phone,
			&member.ImageURL,
			&member.Order,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
