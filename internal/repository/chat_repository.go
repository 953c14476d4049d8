package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-site-api/internal/domain"
)

const chatTable = "chat_messages"

// PostgresChatRepository implements ChatRepository using PostgreSQL.
type PostgresChatRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresChatRepository creates a new PostgresChatRepository.
func NewPostgresChatRepository(pool *pgxpool.Pool) *PostgresChatRepository {
	return &PostgresChatRepository{pool: pool}
}

// Create appends a message to the chat log.
func (r *PostgresChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	defer observe(chatTable, "create")()

	msg.ID = uuid.New().String()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat_messages (id, sender, text, timestamp)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING timestamp
	`, msg.ID, msg.From, msg.Text, nullTime(msg.Timestamp)).Scan(&msg.Timestamp)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// List returns the whole chat log in chronological order.
func (r *PostgresChatRepository) List(ctx context.Context) ([]domain.ChatMessage, error) {
	defer observe(chatTable, "list")()

	rows, err := r.pool.Query(ctx, `
		SELECT id, sender, text, timestamp
		FROM chat_messages
		ORDER BY timestamp ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChatMessage, error) {
		var m domain.ChatMessage
		err := row.Scan(&m.ID, &m.From, &m.Text, &m.Timestamp)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan chat messages: %w", err)
	}
	return messages, nil
}

// Delete removes a chat message by ID.
func (r *PostgresChatRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, chatTable, id)
}
