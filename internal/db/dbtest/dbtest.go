//go:build integration

// Package dbtest starts a throwaway Postgres for integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MikeMC777/ropa-market/internal/db"
)

// Start runs a Postgres container, applies the schema and returns a pool that
// is closed, along with the container, when the test ends.
func Start(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ropa_market"),
		postgres.WithUsername("ropa"),
		postgres.WithPassword("ropa"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	pool, err := db.Connect(ctx, dsn, 4)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

// User inserts a user row and returns its id.
func User(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	id := uuid.NewString()
	if _, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, name, email, password_hash) VALUES ($1,$2,$3,'x')
	`, id, name, id+"@example.com"); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

// Product inserts an unsold product of sellerID and returns its id.
func Product(t *testing.T, pool *pgxpool.Pool, sellerID, title, price string) string {
	t.Helper()
	id := uuid.NewString()
	if _, err := pool.Exec(context.Background(), `
		INSERT INTO products (id, seller_id, title, price) VALUES ($1,$2,$3,$4)
	`, id, sellerID, title, price); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}

// ProductStatus reads the lifecycle flag of a product.
func ProductStatus(t *testing.T, pool *pgxpool.Pool, id string) string {
	t.Helper()
	var s string
	if err := pool.QueryRow(context.Background(), `SELECT status FROM products WHERE id=$1`, id).Scan(&s); err != nil {
		t.Fatalf("product status: %v", err)
	}
	return s
}
