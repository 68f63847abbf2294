package product

import (
	"context"

	"github.com/MikeMC777/ropa-market/internal/db"
)

// Reserve moves a product from unsold to order_received. It is a
// compare-and-swap: a product in any other state yields ErrConflict, so two
// orders can never hold the same item.
func Reserve(ctx context.Context, q db.Querier, id string) error {
	tag, err := q.Exec(ctx, `
		UPDATE products SET status = 'order_received', updated_at = NOW()
		WHERE id = $1 AND status = 'unsold'
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}

// ReleaseForOrder returns the order's still-reserved products to unsold.
// Products already sold or unsold are left alone, as are products another
// pending order has reserved since an admin override.
func ReleaseForOrder(ctx context.Context, q db.Querier, orderID string) (int64, error) {
	return moveForOrder(ctx, q, orderID, StatusUnsold)
}

// FinalizeForOrder marks the order's reserved products sold.
func FinalizeForOrder(ctx context.Context, q db.Querier, orderID string) (int64, error) {
	return moveForOrder(ctx, q, orderID, StatusSold)
}

func moveForOrder(ctx context.Context, q db.Querier, orderID string, to Status) (int64, error) {
	tag, err := q.Exec(ctx, `
		UPDATE products p SET status = $2, updated_at = NOW()
		WHERE p.status = 'order_received'
		  AND p.id IN (SELECT product_id FROM order_items WHERE order_id = $1::uuid AND product_id IS NOT NULL)
		  AND NOT EXISTS (
		      SELECT 1 FROM order_items oi
		      JOIN orders o ON o.id = oi.order_id
		      WHERE oi.product_id = p.id AND oi.order_id <> $1::uuid AND o.status = 'pending'
		  )
	`, orderID, to)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
