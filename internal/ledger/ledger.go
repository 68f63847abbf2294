// Package ledger is the append-only record of payment events per order.
package ledger

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/db"
)

// Events.
const (
	EventInitiated     = "initiated"
	EventStatusChanged = "status_changed"
)

type Entry struct {
	ID        int64           `json:"id"`
	OrderID   string          `json:"orderId"`
	Event     string          `json:"event"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	ActorID   *string         `json:"actorId"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Append writes an entry through q, normally the transaction that changed the
// order's payment state.
func Append(ctx context.Context, q db.Querier, e Entry) error {
	_, err := q.Exec(ctx, `
		INSERT INTO payment_ledger (order_id, event, amount, method, status, actor_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
	`, e.OrderID, e.Event, e.Amount.String(), e.Method, e.Status, e.ActorID)
	return err
}

type Reader interface {
	List(ctx context.Context, orderID string, limit, offset int) ([]Entry, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// List returns entries newest first, optionally for a single order.
func (r *PGRepo) List(ctx context.Context, orderID string, limit, offset int) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, event, amount::text, method, status, actor_id, created_at
		FROM payment_ledger
		WHERE ($1::uuid IS NULL OR order_id = $1::uuid)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, db.NullUUID(orderID), limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var e Entry
		var amount string
		if err := row.Scan(&e.ID, &e.OrderID, &e.Event, &amount, &e.Method, &e.Status, &e.ActorID, &e.CreatedAt); err != nil {
			return e, err
		}
		var err error
		e.Amount, err = decimal.NewFromString(amount)
		return e, err
	})
}
