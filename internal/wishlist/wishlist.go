// Package wishlist keeps the products a user has saved for later.
package wishlist

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/db"
	"github.com/MikeMC777/ropa-market/internal/product"
)

var (
	ErrNotFound       = errors.New("wishlist item not found")
	ErrUnknownProduct = errors.New("product not found")
)

// Item is a saved product with a snapshot of its current listing.
type Item struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Status    product.Status  `json:"status"`
	Image     string          `json:"image,omitempty"`
	AddedAt   time.Time       `json:"addedAt"`
}

// AddRequest payload.
// swagger:model AddRequest
type AddRequest struct {
	ProductID string `json:"productId"`
}

type Repository interface {
	// Add is idempotent: saving a product twice keeps one row.
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]Item, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Add(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO wishlist_items (user_id, product_id, created_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, userID, productID)
	if db.IsForeignKeyViolation(err) {
		return ErrUnknownProduct
	}
	return err
}

func (r *PGRepo) Remove(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) List(ctx context.Context, userID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, p.price::text, p.status,
		       COALESCE((SELECT pi.path FROM product_images pi
		                 WHERE pi.product_id = p.id ORDER BY pi.position LIMIT 1), ''),
		       w.created_at
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Item, error) {
		var it Item
		var price string
		if err := row.Scan(&it.ProductID, &it.Title, &price, &it.Status, &it.Image, &it.AddedAt); err != nil {
			return it, err
		}
		var err error
		it.Price, err = decimal.NewFromString(price)
		return it, err
	})
}

type Service struct{ repo Repository }

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) Add(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return apperr.Validationf("productId is required")
	}
	if err := s.repo.Add(ctx, userID, productID); err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			return apperr.NotFoundf("product not found")
		}
		return apperr.Internalw("wishlist add", err)
	}
	log.Printf("[wishlist] user=%s add product=%s", userID, productID)
	return nil
}

func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFoundf("product is not in the wishlist")
		}
		return apperr.Internalw("wishlist remove", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	out, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Internalw("wishlist list", err)
	}
	return out, nil
}
