package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is one frame for an open stream. A Comment event is a keep-alive and
// carries no name or data.
type Event struct {
	Name    string
	Data    any
	Comment bool
}

const subscriberBuffer = 32

// Subscriber is one open stream (a browser tab) of a user.
type Subscriber struct {
	UserID string
	ch     chan Event
}

// Events is closed when the subscriber is removed from the hub.
func (s *Subscriber) Events() <-chan Event { return s.ch }

// Hub maps user IDs to their open streams. Delivery is best effort: a
// subscriber whose buffer is full misses the frame and is expected to
// re-bootstrap from the notifications table on reconnect.
type Hub struct {
	mu    sync.Mutex
	users map[string]map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{users: make(map[string]map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe(userID string) *Subscriber {
	s := &Subscriber{UserID: userID, ch: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	set, ok := h.users[userID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.users[userID] = set
	}
	set[s] = struct{}{}
	n := len(set)
	h.mu.Unlock()

	log.Printf("[notify] user=%s subscribed streams=%d", userID, n)
	return s
}

// Unsubscribe removes s and closes its channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.users[s.UserID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	close(s.ch)
	if len(set) == 0 {
		delete(h.users, s.UserID)
	}
}

// Send delivers a named event to every open stream of userID and returns how
// many streams accepted it.
func (h *Hub) Send(userID, name string, data any) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for s := range h.users[userID] {
		if offer(s, Event{Name: name, Data: data}) {
			n++
		}
	}
	return n
}

func (h *Hub) heartbeat() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, set := range h.users {
		for s := range set {
			offer(s, Event{Comment: true})
		}
	}
}

// Run sends a keep-alive comment to every open stream each interval until ctx
// is done.
func (h *Hub) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.heartbeat()
		}
	}
}

// Online reports how many users currently hold at least one stream.
func (h *Hub) Online() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.users)
}

func offer(s *Subscriber, ev Event) bool {
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}
