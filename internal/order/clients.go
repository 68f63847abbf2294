package order

import (
	"context"

	"github.com/MikeMC777/ropa-market/internal/product"
)

// ProductReader resolves the authoritative price, owner and status of a
// product referenced by a line item.
type ProductReader interface {
	GetByID(ctx context.Context, id string) (*product.Product, error)
}

// Notifier delivers user notifications after a committed change.
type Notifier interface {
	NotifyQuiet(ctx context.Context, userID, typ string, payload any)
}
