//go:build integration

package product

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ropa-market/internal/db/dbtest"
)

func TestReserve_ConcurrentSingleWinner(t *testing.T) {
	pool := dbtest.Start(t)
	ctx := context.Background()
	seller := dbtest.User(t, pool, "seller")
	id := dbtest.Product(t, pool, seller, "Coat", "10.00")

	const racers = 8
	var (
		wg        sync.WaitGroup
		wins      atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
				return Reserve(ctx, tx, id)
			})
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, ErrConflict):
				conflicts.Add(1)
			default:
				t.Errorf("reserve: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
	assert.EqualValues(t, racers-1, conflicts.Load())
	assert.Equal(t, "order_received", dbtest.ProductStatus(t, pool, id))
}

func TestReserve_Missing(t *testing.T) {
	pool := dbtest.Start(t)
	err := Reserve(context.Background(), pool, "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}
