package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/ledger"
	"github.com/MikeMC777/ropa-market/internal/product"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order transition")
)

// ReservationError reports which product could not be reserved. It unwraps to
// product.ErrConflict or product.ErrNotFound.
type ReservationError struct {
	ProductID string
	Err       error
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("reserve product %s: %v", e.ProductID, e.Err)
}

func (e *ReservationError) Unwrap() error { return e.Err }

type Repository interface {
	// Create persists the order and its items, reserves every referenced
	// product and opens the payment ledger, all or nothing.
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]Order, error)
	// ListBySeller returns orders holding at least one item of sellerID, with
	// the item list narrowed to that seller.
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]Order, error)
	// Update applies ch under a row lock. Cancelling releases reserved
	// products; selling finalizes them.
	Update(ctx context.Context, id string, ch Change, actorID *string) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	addr, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (id, user_id, subtotal, tax, shipping, total, payment_method,
			payment_status, status, shipping_address, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		RETURNING created_at, updated_at
	`, o.ID, o.UserID, o.Subtotal.String(), o.Tax.String(), o.Shipping.String(), o.Total.String(),
		o.PaymentMethod, o.PaymentStatus, o.Status, addr).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	for i := range items {
		it := &items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.OrderID = o.ID
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, seller_id, title, price, quantity, position)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`, it.ID, o.ID, it.ProductID, it.SellerID, it.Title, it.Price.String(), it.Quantity, i); err != nil {
			return err
		}
	}

	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		if err := product.Reserve(ctx, tx, *it.ProductID); err != nil {
			return &ReservationError{ProductID: *it.ProductID, Err: err}
		}
	}

	if err := ledger.Append(ctx, tx, ledger.Entry{
		OrderID: o.ID,
		Event:   ledger.EventInitiated,
		Amount:  o.Total,
		Method:  string(o.PaymentMethod),
		Status:  string(o.PaymentStatus),
		ActorID: o.UserID,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	o.Items = items
	return nil
}

// orderSelect takes the seller filter as $1; NULL keeps every item.
const orderSelect = `
	SELECT o.id, o.user_id, o.subtotal::text, o.tax::text, o.shipping::text, o.total::text,
	       o.payment_method, o.payment_status, o.status, o.shipping_address,
	       o.created_at, o.updated_at,
	       COALESCE((SELECT json_agg(json_build_object(
	                    'id', oi.id, 'orderId', oi.order_id, 'productId', oi.product_id,
	                    'sellerId', oi.seller_id, 'title', oi.title,
	                    'price', oi.price::text, 'quantity', oi.quantity) ORDER BY oi.position)
	                 FROM order_items oi
	                 WHERE oi.order_id = o.id AND ($1::uuid IS NULL OR oi.seller_id = $1::uuid)), '[]'::json)
	FROM orders o`

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o                              Order
		subtotal, tax, shipping, total string
		addr, items                    []byte
	)
	if err := row.Scan(&o.ID, &o.UserID, &subtotal, &tax, &shipping, &total,
		&o.PaymentMethod, &o.PaymentStatus, &o.Status, &addr,
		&o.CreatedAt, &o.UpdatedAt, &items); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{{&o.Subtotal, subtotal}, {&o.Tax, tax}, {&o.Shipping, shipping}, {&o.Total, total}} {
		d, err := decimal.NewFromString(f.src)
		if err != nil {
			return nil, fmt.Errorf("amount: %w", err)
		}
		*f.dst = d
	}
	if len(addr) > 0 {
		if err := json.Unmarshal(addr, &o.ShippingAddress); err != nil {
			return nil, fmt.Errorf("shipping address: %w", err)
		}
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	return &o, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $2::uuid`, nil, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *PGRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]Order, error) {
	return r.list(ctx, orderSelect+`
		WHERE o.user_id = $2::uuid
		ORDER BY o.created_at DESC, o.id
		LIMIT $3 OFFSET $4`, nil, buyerID, limit, offset)
}

func (r *PGRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]Order, error) {
	return r.list(ctx, orderSelect+`
		WHERE EXISTS (SELECT 1 FROM order_items x WHERE x.order_id = o.id AND x.seller_id = $1::uuid)
		ORDER BY o.created_at DESC, o.id
		LIMIT $2 OFFSET $3`, sellerID, limit, offset)
}

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id string, ch Change, actorID *string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		cur     Status
		curPay  PaymentStatus
		method  string
		totalTx string
	)
	err = tx.QueryRow(ctx, `
		SELECT status, payment_status, payment_method, total::text
		FROM orders WHERE id = $1 FOR UPDATE
	`, id).Scan(&cur, &curPay, &method, &totalTx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	next, nextPay := cur, curPay
	if ch.Status != nil {
		next = *ch.Status
	}
	if ch.PaymentStatus != nil {
		nextPay = *ch.PaymentStatus
	}
	if !cur.CanTransition(next) {
		return nil, fmt.Errorf("%w: status %s -> %s", ErrInvalidTransition, cur, next)
	}
	if !curPay.CanTransition(nextPay) {
		return nil, fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, curPay, nextPay)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE orders SET status = $2, payment_status = $3, updated_at = NOW() WHERE id = $1
	`, id, next, nextPay); err != nil {
		return nil, err
	}

	audit := func(field, from, to string) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_audit_log (order_id, field, old_value, new_value, actor_id, created_at)
			VALUES ($1,$2,$3,$4,$5,NOW())
		`, id, field, from, to, actorID)
		return err
	}

	if next != cur {
		if err := audit("status", string(cur), string(next)); err != nil {
			return nil, err
		}
		switch next {
		case StatusCancelled:
			_, err = product.ReleaseForOrder(ctx, tx, id)
		case StatusSold:
			_, err = product.FinalizeForOrder(ctx, tx, id)
		}
		if err != nil {
			return nil, err
		}
	}

	if nextPay != curPay {
		if err := audit("payment_status", string(curPay), string(nextPay)); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(totalTx)
		if err != nil {
			return nil, err
		}
		if err := ledger.Append(ctx, tx, ledger.Entry{
			OrderID: id,
			Event:   ledger.EventStatusChanged,
			Amount:  amount,
			Method:  method,
			Status:  string(nextPay),
			ActorID: actorID,
		}); err != nil {
			return nil, err
		}
	}

	o, err := scanOrder(tx.QueryRow(ctx, orderSelect+` WHERE o.id = $2::uuid`, nil, id))
	if err != nil {
		return nil, err
	}
	return o, tx.Commit(ctx)
}
