package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeMC777/ropa-market/internal/product"
)

// memStore holds orders and the product catalogue they reserve from, so the
// reservation and cascade rules can be exercised without Postgres.
type memStore struct {
	mu       sync.Mutex
	orders   map[string]*Order
	products map[string]*product.Product
	ledger   []string
	failAt   int // fail Create after this many reservations when > 0
	clock    time.Time
}

func newMemStore() *memStore {
	return &memStore{
		orders:   map[string]*Order{},
		products: map[string]*product.Product{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) addProduct(p product.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.Status == "" {
		p.Status = product.StatusUnsold
	}
	m.products[p.ID] = &p
}

func (m *memStore) productStatus(id string) product.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Status
}

func (m *memStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type orderRepo struct{ *memStore }

func (r orderRepo) Create(ctx context.Context, o *Order, items []Item) error {
	m := r.memStore
	m.mu.Lock()
	defer m.mu.Unlock()

	var reserved []*product.Product
	rollback := func() {
		for _, p := range reserved {
			p.Status = product.StatusUnsold
		}
	}
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		if m.failAt > 0 && len(reserved) == m.failAt {
			rollback()
			return errForced
		}
		p, ok := m.products[*it.ProductID]
		if !ok {
			rollback()
			return &ReservationError{ProductID: *it.ProductID, Err: product.ErrNotFound}
		}
		if p.Status != product.StatusUnsold {
			rollback()
			return &ReservationError{ProductID: *it.ProductID, Err: product.ErrConflict}
		}
		p.Status = product.StatusOrderReceived
		reserved = append(reserved, p)
	}

	m.clock = m.clock.Add(time.Minute)
	o.CreatedAt, o.UpdatedAt = m.clock, m.clock
	for i := range items {
		items[i].OrderID = o.ID
	}
	o.Items = items
	cp := *o
	cp.Items = append([]Item(nil), items...)
	m.orders[o.ID] = &cp
	m.ledger = append(m.ledger, o.ID+":initiated")
	return nil
}

func (r orderRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	return &cp, nil
}

func (r orderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Order{}
	for _, o := range r.orders {
		if o.IsBuyer(buyerID) {
			out = append(out, *o)
		}
	}
	return page(out, limit, offset), nil
}

func (r orderRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Order{}
	for _, o := range r.orders {
		var mine []Item
		for _, it := range o.Items {
			if it.SellerID != nil && *it.SellerID == sellerID {
				mine = append(mine, it)
			}
		}
		if len(mine) == 0 {
			continue
		}
		cp := *o
		cp.Items = mine
		out = append(out, cp)
	}
	return page(out, limit, offset), nil
}

func page(out []Order, limit, offset int) []Order {
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []Order{}
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r orderRepo) Update(ctx context.Context, id string, ch Change, actorID *string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	next, nextPay := o.Status, o.PaymentStatus
	if ch.Status != nil {
		next = *ch.Status
	}
	if ch.PaymentStatus != nil {
		nextPay = *ch.PaymentStatus
	}
	if !o.Status.CanTransition(next) || !o.PaymentStatus.CanTransition(nextPay) {
		return nil, ErrInvalidTransition
	}
	if next != o.Status {
		for _, it := range o.Items {
			if it.ProductID == nil {
				continue
			}
			p, ok := r.products[*it.ProductID]
			if !ok || p.Status != product.StatusOrderReceived || r.heldElsewhere(id, p.ID) {
				continue
			}
			switch next {
			case StatusCancelled:
				p.Status = product.StatusUnsold
			case StatusSold:
				p.Status = product.StatusSold
			}
		}
	}
	if nextPay != o.PaymentStatus {
		r.ledger = append(r.ledger, id+":"+string(nextPay))
	}
	o.Status, o.PaymentStatus = next, nextPay
	cp := *o
	return &cp, nil
}

type sentNote struct {
	UserID string
	Type   string
}

type recNotifier struct {
	mu   sync.Mutex
	sent []sentNote
}

func (n *recNotifier) NotifyQuiet(ctx context.Context, userID, typ string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNote{UserID: userID, Type: typ})
}

// heldElsewhere reports whether a pending order other than orderID lists productID.
func (m *memStore) heldElsewhere(orderID, productID string) bool {
	for _, o := range m.orders {
		if o.ID == orderID || o.Status != StatusPending {
			continue
		}
		for _, it := range o.Items {
			if it.ProductID != nil && *it.ProductID == productID {
				return true
			}
		}
	}
	return false
}
