package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/ledger"
	"github.com/MikeMC777/ropa-market/internal/notify"
	"github.com/MikeMC777/ropa-market/internal/order"
	"github.com/MikeMC777/ropa-market/internal/product"
)

//
// ---------- STUBS & FAKES ----------
//

// stubStore keeps products and orders in memory and applies the same
// reservation rules as the Postgres repository.
type stubStore struct {
	mu       sync.Mutex
	products map[string]*product.Product
	orders   map[string]*order.Order
	seq      int
}

func newStubStore() *stubStore {
	return &stubStore{products: map[string]*product.Product{}, orders: map[string]*order.Order{}}
}

func (s *stubStore) addProduct(sellerID, title, price string, st product.Status) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.products[id] = &product.Product{ID: id, SellerID: sellerID, Title: title, Price: decimal.RequireFromString(price), Status: st}
	return id
}

func (s *stubStore) status(id string) product.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Status
}

// GetByID makes stubStore an order.ProductReader.
func (s *stubStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// stubOrders implements order.Repository.
type stubOrders struct{ *stubStore }

func (r stubOrders) Create(ctx context.Context, o *order.Order, items []order.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		if p := r.products[*it.ProductID]; p == nil || p.Status != product.StatusUnsold {
			// nothing was written yet, so there is nothing to undo
			return &order.ReservationError{ProductID: *it.ProductID, Err: product.ErrConflict}
		}
	}
	for _, it := range items {
		if it.ProductID != nil {
			r.products[*it.ProductID].Status = product.StatusOrderReceived
		}
	}
	r.seq++
	o.CreatedAt = time.Unix(int64(r.seq), 0)
	o.Items = items
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r stubOrders) GetByID(ctx context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r stubOrders) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []order.Order{}
	for _, o := range r.orders {
		if o.IsBuyer(buyerID) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r stubOrders) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []order.Order{}
	for _, o := range r.orders {
		var mine []order.Item
		for _, it := range o.Items {
			if it.SellerID != nil && *it.SellerID == sellerID {
				mine = append(mine, it)
			}
		}
		if len(mine) > 0 {
			cp := *o
			cp.Items = mine
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r stubOrders) Update(ctx context.Context, id string, ch order.Change, actorID *string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	if ch.Status != nil && *ch.Status != o.Status {
		if !o.Status.CanTransition(*ch.Status) {
			return nil, order.ErrInvalidTransition
		}
		for _, it := range o.Items {
			if it.ProductID == nil {
				continue
			}
			p := r.products[*it.ProductID]
			if p == nil || p.Status != product.StatusOrderReceived {
				continue
			}
			if *ch.Status == order.StatusCancelled {
				p.Status = product.StatusUnsold
			} else if *ch.Status == order.StatusSold {
				p.Status = product.StatusSold
			}
		}
		o.Status = *ch.Status
	}
	if ch.PaymentStatus != nil {
		o.PaymentStatus = *ch.PaymentStatus
	}
	cp := *o
	return &cp, nil
}

// stubNotes implements notify.Repository.
type stubNotes struct {
	mu   sync.Mutex
	rows []notify.Notification
}

func (s *stubNotes) Create(ctx context.Context, n *notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.CreatedAt = time.Now()
	s.rows = append(s.rows, *n)
	return nil
}

func (s *stubNotes) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []notify.Notification{}
	for _, n := range s.rows {
		if n.UserID == userID && (!unreadOnly || n.ReadAt == nil) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *stubNotes) MarkRead(ctx context.Context, id, userID string) error { return nil }

func (s *stubNotes) MarkAllRead(ctx context.Context, userID string) (int64, error) { return 0, nil }

// stubLedger implements ledger.Reader and records the filter it was called with.
type stubLedger struct {
	entries []ledger.Entry
	orderID string
	limit   int
}

func (l *stubLedger) List(ctx context.Context, orderID string, limit, offset int) ([]ledger.Entry, error) {
	l.orderID, l.limit = orderID, limit
	out := []ledger.Entry{}
	for _, e := range l.entries {
		if orderID == "" || e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

type testEnv struct {
	store  *stubStore
	notes  *stubNotes
	ledger *stubLedger
	deps   *deps
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newStubStore()
	notes := &stubNotes{}
	payments := &stubLedger{}
	ns := notify.NewService(notes, notify.NewHub())
	d := &deps{
		tokens:   auth.NewTokens("test-secret", time.Hour),
		orders:   order.NewService(stubOrders{store}, store, ns, true),
		notify:   ns,
		payments: payments,
	}
	return &testEnv{store: store, notes: notes, ledger: payments, deps: d, router: newRouter(d)}
}

func (e *testEnv) token(t *testing.T, userID string, role auth.Role) string {
	t.Helper()
	tok, err := e.deps.tokens.Issue(userID, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	e.router.ServeHTTP(w, req)
	return w
}

func orderBody(items string, subtotal, tax, shipping, total string) string {
	return fmt.Sprintf(`{"items":[%s],"subtotal":%s,"tax":%s,"shipping":%s,"total":%s,"paymentMethod":"cod",
		"shippingAddress":{"fullName":"Asha Rai","phone":"9800000000","line1":"Thamel","city":"Kathmandu"}}`,
		items, subtotal, tax, shipping, total)
}

func productLine(id, price string) string {
	return fmt.Sprintf(`{"productId":%q,"price":%s,"quantity":1}`, id, price)
}

//
// ---------- TESTS ----------
//

func TestCreateOrder_TotalsAndListMine(t *testing.T) {
	env := newTestEnv(t)
	buyer := uuid.NewString()
	tok := env.token(t, buyer, auth.RoleUser)

	w := env.do(http.MethodPost, "/api/orders", tok,
		orderBody(`{"title":"A","price":100,"quantity":1}`, "100", "13", "200", "313"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodGet, "/api/orders/mine", tok, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var mine []order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("len=%d, want 1", len(mine))
	}
	if !mine[0].Total.Equal(decimal.NewFromInt(313)) {
		t.Fatalf("total=%s, want 313", mine[0].Total)
	}
	if len(mine[0].Items) != 1 || mine[0].Items[0].Title != "A" {
		t.Fatalf("items=%+v, want one item A", mine[0].Items)
	}
	if !strings.Contains(w.Body.String(), `"total":313`) {
		t.Fatalf("money should be encoded as a JSON number: %s", w.Body.String())
	}
}

func TestCreateOrder_WrongTotalRejected(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/orders", "",
		orderBody(`{"title":"A","price":100,"quantity":1}`, "100", "13", "200", "300"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}
}

func TestCreateOrder_GuestCheckout(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/orders", "",
		orderBody(`{"title":"A","price":10,"quantity":1}`, "10", "0", "0", "10"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var o order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if o.UserID != nil {
		t.Fatalf("guest order has userId=%v", *o.UserID)
	}
}

func TestCreateOrder_SecondReservationConflicts(t *testing.T) {
	env := newTestEnv(t)
	seller := uuid.NewString()
	pid := env.store.addProduct(seller, "Coat", "50", product.StatusUnsold)

	w := env.do(http.MethodPost, "/api/orders", env.token(t, uuid.NewString(), auth.RoleUser),
		orderBody(productLine(pid, "50"), "50", "0", "0", "50"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if st := env.store.status(pid); st != product.StatusOrderReceived {
		t.Fatalf("product status=%s, want order_received", st)
	}

	w = env.do(http.MethodPost, "/api/orders", env.token(t, uuid.NewString(), auth.RoleUser),
		orderBody(productLine(pid, "50"), "50", "0", "0", "50"))
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s (want 409)", w.Code, w.Body.String())
	}
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Error == "" {
		t.Fatalf("want {\"error\": ...}, got %s", w.Body.String())
	}
}

func TestUpdateOrder_CancelCascade(t *testing.T) {
	env := newTestEnv(t)
	seller := uuid.NewString()
	p1 := env.store.addProduct(seller, "Coat", "10", product.StatusUnsold)
	p2 := env.store.addProduct(seller, "Boots", "20", product.StatusUnsold)

	buyer := uuid.NewString()
	w := env.do(http.MethodPost, "/api/orders", env.token(t, buyer, auth.RoleUser),
		orderBody(productLine(p1, "10")+","+productLine(p2, "20"), "30", "0", "0", "30"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var created order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	// an admin already marked one piece sold by hand
	env.store.mu.Lock()
	env.store.products[p2].Status = product.StatusSold
	env.store.mu.Unlock()

	w = env.do(http.MethodPut, "/api/orders/"+created.ID, env.token(t, buyer, auth.RoleUser), `{"status":"cancelled"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d body=%s (want 403 for non-admin)", w.Code, w.Body.String())
	}

	admin := env.token(t, uuid.NewString(), auth.RoleAdmin)
	w = env.do(http.MethodPut, "/api/orders/"+created.ID, admin, `{"status":"cancelled"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if st := env.store.status(p1); st != product.StatusUnsold {
		t.Fatalf("p1 status=%s, want unsold", st)
	}
	if st := env.store.status(p2); st != product.StatusSold {
		t.Fatalf("p2 status=%s, want sold", st)
	}

	w = env.do(http.MethodPut, "/api/orders/"+created.ID, admin, `{"status":"sold"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s (want 409 from terminal state)", w.Code, w.Body.String())
	}
}

func TestSoldOrders_OnlySellerItems(t *testing.T) {
	env := newTestEnv(t)
	s1, s2 := uuid.NewString(), uuid.NewString()
	p1 := env.store.addProduct(s1, "Coat", "10", product.StatusUnsold)
	p2 := env.store.addProduct(s2, "Boots", "20", product.StatusUnsold)

	w := env.do(http.MethodPost, "/api/orders", env.token(t, uuid.NewString(), auth.RoleUser),
		orderBody(productLine(p1, "10")+","+productLine(p2, "20"), "30", "0", "0", "30"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodGet, "/api/orders/sold", env.token(t, s1, auth.RoleUser), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var sold []order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &sold); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(sold) != 1 || len(sold[0].Items) != 1 || sold[0].Items[0].Title != "Coat" {
		t.Fatalf("seller view=%s, want one order with only Coat", w.Body.String())
	}

	// both sellers were told about the order
	env.notes.mu.Lock()
	n := len(env.notes.rows)
	env.notes.mu.Unlock()
	if n != 2 {
		t.Fatalf("notifications=%d, want 2", n)
	}
}

func TestOrders_RequireToken(t *testing.T) {
	env := newTestEnv(t)
	if w := env.do(http.MethodGet, "/api/orders/mine", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d (want 401)", w.Code)
	}
	if w := env.do(http.MethodGet, "/api/orders/mine", "garbage", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d (want 401)", w.Code)
	}
	if w := env.do(http.MethodGet, "/api/orders/mine?token="+env.token(t, uuid.NewString(), auth.RoleUser), "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d (want 401: query tokens are for the event stream only)", w.Code)
	}
	if w := env.do(http.MethodGet, "/api/orders/not-a-uuid", env.token(t, uuid.NewString(), auth.RoleUser), ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (want 400)", w.Code)
	}
}

func TestPayments_AdminFilterByOrder(t *testing.T) {
	env := newTestEnv(t)
	o1, o2 := uuid.NewString(), uuid.NewString()
	env.ledger.entries = []ledger.Entry{
		{ID: 3, OrderID: o1, Event: ledger.EventStatusChanged, Amount: decimal.NewFromInt(50), Method: "cod", Status: "paid"},
		{ID: 2, OrderID: o2, Event: ledger.EventInitiated, Amount: decimal.NewFromInt(20), Method: "cod", Status: "pending"},
		{ID: 1, OrderID: o1, Event: ledger.EventInitiated, Amount: decimal.NewFromInt(50), Method: "cod", Status: "pending"},
	}

	if w := env.do(http.MethodGet, "/api/admin/payments", env.token(t, uuid.NewString(), auth.RoleUser), ""); w.Code != http.StatusForbidden {
		t.Fatalf("status=%d (want 403 for non-admin)", w.Code)
	}

	admin := env.token(t, uuid.NewString(), auth.RoleAdmin)
	w := env.do(http.MethodGet, "/api/admin/payments?orderId="+o1+"&limit=5", admin, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []ledger.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].Status != "paid" || got[1].Event != ledger.EventInitiated {
		t.Fatalf("entries=%s, want the two rows of %s newest first", w.Body.String(), o1)
	}
	if env.ledger.orderID != o1 || env.ledger.limit != 5 {
		t.Fatalf("reader called with order=%q limit=%d", env.ledger.orderID, env.ledger.limit)
	}

	w = env.do(http.MethodGet, "/api/admin/payments", admin, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 3 {
		t.Fatalf("unfiltered entries=%s, want 3", w.Body.String())
	}

	if w := env.do(http.MethodGet, "/api/admin/payments?orderId=nope", admin, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (want 400 for malformed orderId)", w.Code)
	}
}

func TestCreateOrder_MalformedProductID(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/orders", "", orderBody(productLine("p1", "10"), "10", "0", "0", "10"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	if w := env.do(http.MethodGet, "/healthz", "", ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestStream_BootstrapThenNotification(t *testing.T) {
	env := newTestEnv(t)
	user := uuid.NewString()
	if _, err := env.deps.notify.Notify(context.Background(), user, notify.TypeMessage, map[string]string{"preview": "old"}); err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		srv.URL+"/api/notifications/stream?token="+env.token(t, user, auth.RoleUser), nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("content-type=%q", ct)
	}

	rd := bufio.NewReader(resp.Body)
	data := readEvent(t, rd, notify.EventBootstrap)
	if !strings.Contains(data, "old") {
		t.Fatalf("bootstrap data=%s, want the unread notification", data)
	}

	if _, err := env.deps.notify.Notify(context.Background(), user, notify.TypeOrderUpdated, map[string]string{"status": "sold"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	data = readEvent(t, rd, notify.EventNotification)
	if !strings.Contains(data, notify.TypeOrderUpdated) {
		t.Fatalf("notification data=%s", data)
	}
}

// readEvent skips lines until the named event and returns its data line.
func readEvent(t *testing.T, rd *bufio.Reader, name string) string {
	t.Helper()
	for {
		line, err := rd.ReadString('\n')
		if err != nil {
			t.Fatalf("waiting for %s: %v", name, err)
		}
		ev, ok := strings.CutPrefix(strings.TrimSpace(line), "event:")
		if !ok || strings.TrimSpace(ev) != name {
			continue
		}
		data, err := rd.ReadString('\n')
		if err != nil {
			t.Fatalf("reading %s data: %v", name, err)
		}
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(data), "data:"))
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
}
