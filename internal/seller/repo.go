package seller

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/ropa-market/internal/db"
)

var (
	ErrNotFound        = errors.New("verification not found")
	ErrPendingExists   = errors.New("a verification request is already pending")
	ErrAlreadyReviewed = errors.New("verification already reviewed")
	ErrNotEligible     = errors.New("buyer cannot rate this seller for this order")
	ErrDuplicate       = errors.New("feedback already submitted")
)

type VerificationRepo interface {
	CreateVerification(ctx context.Context, v *Verification) error
	ListVerifications(ctx context.Context, status VerificationStatus, limit, offset int) ([]Verification, error)
	// Review records the decision and updates the user's seller flags in the
	// same transaction.
	Review(ctx context.Context, id string, approve bool, tier Tier, adminID string) (*Verification, error)
}

type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, f *Feedback) error
	ListFeedback(ctx context.Context, sellerID string, limit, offset int) (*Summary, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) CreateVerification(ctx context.Context, v *Verification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO seller_verifications (id, user_id, business_name, document_url, note, status, created_at)
		VALUES ($1,$2,$3,$4,$5,'pending',NOW())
		RETURNING created_at
	`, v.ID, v.UserID, v.BusinessName, v.DocumentURL, v.Note).Scan(&v.CreatedAt)
	if db.IsUniqueViolation(err) {
		return ErrPendingExists
	}
	if err != nil {
		return err
	}
	v.Status = VerificationPending
	return nil
}

const verificationSelect = `
	SELECT v.id, v.user_id, u.name, u.email, v.business_name, v.document_url, v.note,
	       v.status, v.tier, v.reviewed_by, v.reviewed_at, v.created_at
	FROM seller_verifications v
	JOIN users u ON u.id = v.user_id`

func scanVerification(row pgx.Row) (Verification, error) {
	var v Verification
	err := row.Scan(&v.ID, &v.UserID, &v.UserName, &v.UserEmail, &v.BusinessName, &v.DocumentURL, &v.Note,
		&v.Status, &v.Tier, &v.ReviewedBy, &v.ReviewedAt, &v.CreatedAt)
	return v, err
}

func (r *PGRepo) ListVerifications(ctx context.Context, status VerificationStatus, limit, offset int) ([]Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, verificationSelect+`
		WHERE ($1 = '' OR v.status = $1)
		ORDER BY v.created_at
		LIMIT $2 OFFSET $3
	`, string(status), limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Verification, error) {
		return scanVerification(row)
	})
}

func (r *PGRepo) Review(ctx context.Context, id string, approve bool, tier Tier, adminID string) (*Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		userID string
		status VerificationStatus
	)
	err = tx.QueryRow(ctx, `SELECT user_id, status FROM seller_verifications WHERE id=$1 FOR UPDATE`, id).
		Scan(&userID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if status != VerificationPending {
		return nil, ErrAlreadyReviewed
	}

	next := VerificationRejected
	if approve {
		next = VerificationApproved
	} else {
		tier = ""
	}
	if _, err := tx.Exec(ctx, `
		UPDATE seller_verifications
		SET status=$2, tier=$3, reviewed_by=$4, reviewed_at=NOW()
		WHERE id=$1
	`, id, next, tier, adminID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET seller_verified=$2, seller_tier=$3, updated_at=NOW() WHERE id=$1
	`, userID, approve, tier); err != nil {
		return nil, err
	}

	v, err := scanVerification(tx.QueryRow(ctx, verificationSelect+` WHERE v.id=$1`, id))
	if err != nil {
		return nil, err
	}
	return &v, tx.Commit(ctx)
}

func (r *PGRepo) CreateFeedback(ctx context.Context, f *Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var eligible bool
	if err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.id = $1::uuid AND o.user_id = $2::uuid AND oi.seller_id = $3::uuid
			  AND o.status = 'sold'
		)
	`, f.OrderID, f.BuyerID, f.SellerID).Scan(&eligible); err != nil {
		return err
	}
	if !eligible {
		return ErrNotEligible
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO seller_feedback (id, order_id, buyer_id, seller_id, rating, comment, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
		RETURNING created_at
	`, f.ID, f.OrderID, f.BuyerID, f.SellerID, f.Rating, f.Comment).Scan(&f.CreatedAt)
	if db.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PGRepo) ListFeedback(ctx context.Context, sellerID string, limit, offset int) (*Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s := &Summary{SellerID: sellerID}
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(rating), 0)::float8 FROM seller_feedback WHERE seller_id = $1::uuid
	`, sellerID).Scan(&s.Count, &s.Average); err != nil {
		return nil, err
	}
	s.Average = math.Round(s.Average*100) / 100

	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.order_id, f.buyer_id, u.name, f.seller_id, f.rating, f.comment, f.created_at
		FROM seller_feedback f
		JOIN users u ON u.id = f.buyer_id
		WHERE f.seller_id = $1::uuid
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`, sellerID, limit, offset)
	if err != nil {
		return nil, err
	}
	s.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (Feedback, error) {
		var f Feedback
		err := row.Scan(&f.ID, &f.OrderID, &f.BuyerID, &f.BuyerName, &f.SellerID, &f.Rating, &f.Comment, &f.CreatedAt)
		return f, err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
