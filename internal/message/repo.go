package message

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/ropa-market/internal/db"
)

var ErrUnknownRecipient = errors.New("recipient not found")

type Repository interface {
	Create(ctx context.Context, m *Message) error
	Conversation(ctx context.Context, a, b string, limit, offset int) ([]Message, error)
	Threads(ctx context.Context, userID string) ([]Thread, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, m *Message) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO messages (id, sender_id, recipient_id, product_id, body, created_at)
		VALUES ($1,$2,$3,$4,$5,NOW())
		RETURNING created_at
	`, m.ID, m.SenderID, m.RecipientID, m.ProductID, m.Body).Scan(&m.CreatedAt)
	if db.IsForeignKeyViolation(err) {
		return ErrUnknownRecipient
	}
	return err
}

func scanMessage(row pgx.CollectableRow) (Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.ProductID, &m.Body, &m.CreatedAt)
	return m, err
}

// Conversation returns messages between a and b, oldest first.
func (r *PGRepo) Conversation(ctx context.Context, a, b string, limit, offset int) ([]Message, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, sender_id, recipient_id, product_id, body, created_at
		FROM messages
		WHERE (sender_id=$1 AND recipient_id=$2) OR (sender_id=$2 AND recipient_id=$1)
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`, a, b, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanMessage)
}

// Threads returns one entry per counterpart, most recent conversation first.
func (r *PGRepo) Threads(ctx context.Context, userID string) ([]Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT peer, name, id, sender_id, recipient_id, product_id, body, created_at FROM (
			SELECT DISTINCT ON (m.peer) m.peer, u.name, m.id, m.sender_id, m.recipient_id,
			       m.product_id, m.body, m.created_at
			FROM (
				SELECT *, CASE WHEN sender_id=$1 THEN recipient_id ELSE sender_id END AS peer
				FROM messages WHERE sender_id=$1 OR recipient_id=$1
			) m
			JOIN users u ON u.id = m.peer
			ORDER BY m.peer, m.created_at DESC
		) t
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Thread, error) {
		var t Thread
		err := row.Scan(&t.UserID, &t.UserName, &t.Last.ID, &t.Last.SenderID, &t.Last.RecipientID,
			&t.Last.ProductID, &t.Last.Body, &t.Last.CreatedAt)
		return t, err
	})
}
