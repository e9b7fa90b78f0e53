package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viet-college/department-cms/internal/domain"
)

// ContactRepository encapsulates contact submission persistence.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (id, name, email, phone, subject, message, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.Status,
	).Scan(&contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const query = `
        SELECT id, name, email, phone, subject, message, status, created_at, updated_at
        FROM contacts ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Subject,
			&contact.Message,
			&contact.Status,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	const query = `
        UPDATE contacts SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING id, name, email, phone, subject, message, status, created_at, updated_at`

	var contact domain.Contact
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Subject,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &contact, nil
}
