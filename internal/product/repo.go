// Package product provides the repository interface and PostgreSQL implementation for managing products.
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/db"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrConflict = errors.New("product is not available")
)

type Query struct {
	Q        string
	Category string
	Status   Status
	SellerID string
	Verified bool
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, error)
	Delete(ctx context.Context, id string) (images []string, err error)
	SetStatus(ctx context.Context, id string, s Status) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var original *string
	if p.OriginalPrice.Valid {
		s := p.OriginalPrice.Decimal.String()
		original = &s
	}
	if err := tx.QueryRow(ctx, `
		INSERT INTO products (id, seller_id, title, description, price, original_price,
			brand, category, size, condition, location, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW(),NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.SellerID, p.Title, p.Description, p.Price.String(), original,
		p.Brand, p.Category, p.Size, p.Condition, p.Location, p.Status).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}

	for i, path := range p.Images {
		if _, err := tx.Exec(ctx, `
			INSERT INTO product_images (id, product_id, path, position)
			VALUES ($1,$2,$3,$4)
		`, uuid.NewString(), p.ID, path, i); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

const productSelect = `
	SELECT p.id, p.seller_id, u.name, u.seller_verified, p.title, p.description,
	       p.price::text, p.original_price::text, p.brand, p.category, p.size,
	       p.condition, p.location, p.status, p.created_at, p.updated_at,
	       COALESCE((SELECT json_agg(pi.path ORDER BY pi.position)
	                 FROM product_images pi WHERE pi.product_id = p.id), '[]'::json)
	FROM products p
	JOIN users u ON u.id = p.seller_id`

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p        Product
		price    string
		original *string
		images   []byte
	)
	if err := row.Scan(&p.ID, &p.SellerID, &p.SellerName, &p.SellerVerified, &p.Title, &p.Description,
		&price, &original, &p.Brand, &p.Category, &p.Size,
		&p.Condition, &p.Location, &p.Status, &p.CreatedAt, &p.UpdatedAt, &images); err != nil {
		return nil, err
	}
	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	if original != nil {
		d, err := decimal.NewFromString(*original)
		if err != nil {
			return nil, fmt.Errorf("original price: %w", err)
		}
		p.OriginalPrice = decimal.NewNullDecimal(d)
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	return &p, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, productSelect+`
		WHERE ($1 = '' OR p.title ILIKE '%'||$1||'%' OR p.brand ILIKE '%'||$1||'%')
		  AND ($2 = '' OR p.category = $2)
		  AND ($3 = '' OR p.status = $3)
		  AND ($4::uuid IS NULL OR p.seller_id = $4::uuid)
		  AND (NOT $5 OR u.seller_verified)
		ORDER BY p.created_at DESC
		LIMIT $6 OFFSET $7
	`, strings.TrimSpace(q.Q), q.Category, string(q.Status), db.NullUUID(q.SellerID), q.Verified, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Delete removes the product row (images cascade) and returns the stored image
// paths so the caller can remove the files.
func (r *PGRepo) Delete(ctx context.Context, id string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `SELECT path FROM product_images WHERE product_id=$1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return paths, tx.Commit(ctx)
}

func (r *PGRepo) SetStatus(ctx context.Context, id string, s Status) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE products SET status=$2, updated_at=NOW() WHERE id=$1`, id, s)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
