package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ropa-market/internal/apperr"
)

type memRepo struct {
	mu   sync.Mutex
	rows []Notification
	fail bool
}

func (m *memRepo) Create(ctx context.Context, n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db down")
	}
	m.rows = append(m.rows, *n)
	return nil
}

func (m *memRepo) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Notification
	for _, n := range m.rows {
		if n.UserID == userID && (!unreadOnly || n.ReadAt == nil) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memRepo) MarkRead(ctx context.Context, id, userID string) error {
	return ErrNotFound
}

func (m *memRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func TestNotify_PersistsThenPushes(t *testing.T) {
	repo := &memRepo{}
	hub := NewHub()
	svc := NewService(repo, hub)
	sub := hub.Subscribe("seller-1")

	n, err := svc.Notify(context.Background(), "seller-1", TypeOrderReceived, map[string]string{"orderId": "o-1"})
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, n.ID, repo.rows[0].ID)

	ev := <-sub.Events()
	assert.Equal(t, EventNotification, ev.Name)
	pushed, ok := ev.Data.(*Notification)
	require.True(t, ok)
	assert.Equal(t, n.ID, pushed.ID)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(pushed.Payload, &payload))
	assert.Equal(t, "o-1", payload["orderId"])
}

func TestNotify_NoPushWhenStoreFails(t *testing.T) {
	repo := &memRepo{fail: true}
	hub := NewHub()
	svc := NewService(repo, hub)
	sub := hub.Subscribe("u")

	_, err := svc.Notify(context.Background(), "u", TypeMessage, nil)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	assert.Empty(t, drain(sub))
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := NewService(&memRepo{}, NewHub())
	err := svc.MarkRead(context.Background(), "x", "u")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
