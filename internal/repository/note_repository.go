package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// NoteRepository encapsulates study note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context, published *bool) ([]domain.Note, error)
	ListBySemester(ctx context.Context, semester string) ([]domain.Note, error)
}

type noteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository returns a Postgres-backed implementation.
func NewNoteRepository(pool *pgxpool.Pool) NoteRepository {
	return &noteRepository{pool: pool}
}

const noteColumns = `id, title, subject, semester, description, file_url, published, created_at, updated_at`

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	const query = `
        INSERT INTO notes (id, title, subject, semester, description, file_url, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		note.ID,
		note.Title,
		note.Subject,
		note.Semester,
		note.Description,
		note.FileURL,
		note.Published,
	).Scan(&note.CreatedAt, &note.UpdatedAt)
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	const query = `
        UPDATE notes SET title=$1, subject=$2, semester=$3, description=$4, file_url=$5, published=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		note.Title,
		note.Subject,
		note.Semester,
		note.Description,
		note.FileURL,
		note.Published,
		note.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id=$1`

	var note domain.Note
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.Title,
		&note.Subject,
		&note.Semester,
		&note.Description,
		&note.FileURL,
		&note.Published,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) List(ctx context.Context, published *bool) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes`
	args := []any{}
	if published != nil {
		query += ` WHERE published=$1`
		args = append(args, *published)
	}
	query += ` ORDER BY semester ASC, subject ASC`
	return r.list(ctx, query, args...)
}

func (r *noteRepository) ListBySemester(ctx context.Context, semester string) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE semester=$1 ORDER BY subject ASC`
	return r.list(ctx, query, semester)
}

func (r *noteRepository) list(ctx context.Context, query string, args ...any) ([]domain.Note, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Subject,
			&note.Semester,
			&note.Description,
			&note.FileURL,
			&note.Published,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}
