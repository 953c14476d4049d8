package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-site-api/internal/domain"
)

const contactsTable = "contacts"

// PostgresContactRepository implements ContactRepository using PostgreSQL.
type PostgresContactRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository.
func NewPostgresContactRepository(pool *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{pool: pool}
}

// Create inserts a contact submission, assigning its ID and creation time.
func (r *PostgresContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	defer observe(contactsTable, "create")()

	contact.ID = uuid.New().String()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING created_at
	`, contact.ID, contact.Name, contact.Email, contact.Message, nullTime(contact.CreatedAt)).
		Scan(&contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// List returns every contact submission, newest first.
func (r *PostgresContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	defer observe(contactsTable, "list")()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		var c domain.Contact
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan contacts: %w", err)
	}
	return contacts, nil
}

// Delete removes a contact submission by ID.
func (r *PostgresContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, contactsTable, id)
}
