package seller

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/notify"
)

type memRepo struct {
	mu           sync.Mutex
	vs           map[string]*Verification
	verified     map[string]Tier
	orderBuyer   map[string]string
	orderSellers map[string][]string
	orderStatus  map[string]string
	feedback     []Feedback
}

func newMemRepo() *memRepo {
	return &memRepo{
		vs:           map[string]*Verification{},
		verified:     map[string]Tier{},
		orderBuyer:   map[string]string{},
		orderSellers: map[string][]string{},
		orderStatus:  map[string]string{},
	}
}

func (m *memRepo) CreateVerification(ctx context.Context, v *Verification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.vs {
		if x.UserID == v.UserID && x.Status == VerificationPending {
			return ErrPendingExists
		}
	}
	v.Status = VerificationPending
	v.CreatedAt = time.Now()
	cp := *v
	m.vs[v.ID] = &cp
	return nil
}

func (m *memRepo) ListVerifications(ctx context.Context, status VerificationStatus, limit, offset int) ([]Verification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Verification{}
	for _, v := range m.vs {
		if status == "" || v.Status == status {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *memRepo) Review(ctx context.Context, id string, approve bool, tier Tier, adminID string) (*Verification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v.Status != VerificationPending {
		return nil, ErrAlreadyReviewed
	}
	v.Status = VerificationRejected
	v.Tier = ""
	if approve {
		v.Status = VerificationApproved
		v.Tier = tier
		m.verified[v.UserID] = tier
	}
	v.ReviewedBy = &adminID
	v.UserEmail = v.UserID + "@example.com"
	cp := *v
	return &cp, nil
}

func (m *memRepo) CreateFeedback(ctx context.Context, f *Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	eligible := false
	if m.orderBuyer[f.OrderID] == f.BuyerID && m.orderStatus[f.OrderID] == "sold" {
		for _, s := range m.orderSellers[f.OrderID] {
			eligible = eligible || s == f.SellerID
		}
	}
	if !eligible {
		return ErrNotEligible
	}
	for _, x := range m.feedback {
		if x.OrderID == f.OrderID && x.BuyerID == f.BuyerID && x.SellerID == f.SellerID {
			return ErrDuplicate
		}
	}
	m.feedback = append(m.feedback, *f)
	return nil
}

func (m *memRepo) ListFeedback(ctx context.Context, sellerID string, limit, offset int) (*Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Summary{SellerID: sellerID, Items: []Feedback{}}
	sum := 0
	for _, f := range m.feedback {
		if f.SellerID == sellerID {
			s.Items = append(s.Items, f)
			sum += f.Rating
		}
	}
	s.Count = len(s.Items)
	if s.Count > 0 {
		s.Average = float64(sum) / float64(s.Count)
	}
	return s, nil
}

type recNotifier struct{ sent []string }

func (n *recNotifier) NotifyQuiet(ctx context.Context, userID, typ string, payload any) {
	n.sent = append(n.sent, userID+":"+typ)
}

type recMailer struct{ to []string }

func (m *recMailer) Send(to, subject, body string) error {
	m.to = append(m.to, to)
	return nil
}

func TestVerification_ApplyAndReview(t *testing.T) {
	repo := newMemRepo()
	n, mail := &recNotifier{}, &recMailer{}
	svc := NewService(repo, repo, n, mail)
	ctx := context.Background()

	_, err := svc.Apply(ctx, "u1", ApplyRequest{BusinessName: "  "})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	v, err := svc.Apply(ctx, "u1", ApplyRequest{BusinessName: "Boutique"})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, "u1", ApplyRequest{BusinessName: "Again"})
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	pending, err := svc.ListPending(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.Review(ctx, v.ID, ReviewRequest{Approve: true, Tier: "platinum"}, "admin")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	got, err := svc.Review(ctx, v.ID, ReviewRequest{Approve: true, Tier: "silver"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, VerificationApproved, got.Status)
	assert.Equal(t, TierSilver, repo.verified["u1"])
	assert.Equal(t, []string{"u1:" + notify.TypeSellerReview}, n.sent)
	assert.Equal(t, []string{"u1@example.com"}, mail.to)

	_, err = svc.Review(ctx, v.ID, ReviewRequest{Approve: false}, "admin")
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	_, err = svc.Review(ctx, "missing", ReviewRequest{}, "admin")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	// a new request is allowed once the previous one is decided
	_, err = svc.Apply(ctx, "u1", ApplyRequest{BusinessName: "Boutique 2"})
	assert.NoError(t, err)
}

// Fixed IDs keep assertions readable.
const (
	orderSold      = "0b8f2c1e-0000-4000-8000-000000000001"
	orderPending   = "0b8f2c1e-0000-4000-8000-000000000002"
	orderCancelled = "0b8f2c1e-0000-4000-8000-000000000003"
	buyer1         = "b0000000-0000-4000-8000-000000000001"
	buyer2         = "b0000000-0000-4000-8000-000000000002"
	seller1        = "5e000000-0000-4000-8000-000000000001"
	seller2        = "5e000000-0000-4000-8000-000000000002"
	seller3        = "5e000000-0000-4000-8000-000000000003"
)

func TestFeedback(t *testing.T) {
	repo := newMemRepo()
	repo.orderBuyer[orderSold] = buyer1
	repo.orderSellers[orderSold] = []string{seller1, seller2}
	repo.orderStatus[orderSold] = "sold"
	n := &recNotifier{}
	svc := NewService(repo, repo, n, &recMailer{})
	ctx := context.Background()

	_, err := svc.CreateFeedback(ctx, buyer1, FeedbackRequest{OrderID: orderSold, SellerID: seller1, Rating: 6})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	_, err = svc.CreateFeedback(ctx, buyer1, FeedbackRequest{OrderID: "o1", SellerID: seller1, Rating: 5})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err), "malformed order id")

	_, err = svc.CreateFeedback(ctx, buyer1, FeedbackRequest{OrderID: orderSold, SellerID: seller1, Rating: 5, Comment: " great "})
	require.NoError(t, err)
	_, err = svc.CreateFeedback(ctx, buyer1, FeedbackRequest{OrderID: orderSold, SellerID: seller1, Rating: 4})
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = svc.CreateFeedback(ctx, buyer1, FeedbackRequest{OrderID: orderSold, SellerID: seller3, Rating: 4})
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	_, err = svc.CreateFeedback(ctx, buyer2, FeedbackRequest{OrderID: orderSold, SellerID: seller2, Rating: 4})
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	_, err = svc.CreateFeedback(ctx, buyer1, FeedbackRequest{OrderID: orderSold, SellerID: seller2, Rating: 2})
	require.NoError(t, err)

	sum, err := svc.ListFeedback(ctx, seller1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
	assert.Equal(t, 5.0, sum.Average)
	assert.Equal(t, "great", sum.Items[0].Comment)
	assert.Equal(t, []string{seller1 + ":" + notify.TypeFeedbackReceived, seller2 + ":" + notify.TypeFeedbackReceived}, n.sent)
}

func TestFeedback_OnlyForSoldOrders(t *testing.T) {
	repo := newMemRepo()
	for id, st := range map[string]string{orderPending: "pending", orderCancelled: "cancelled"} {
		repo.orderBuyer[id] = buyer1
		repo.orderSellers[id] = []string{seller1}
		repo.orderStatus[id] = st
	}
	n := &recNotifier{}
	svc := NewService(repo, repo, n, &recMailer{})

	for _, id := range []string{orderPending, orderCancelled} {
		_, err := svc.CreateFeedback(context.Background(), buyer1, FeedbackRequest{OrderID: id, SellerID: seller1, Rating: 5})
		assert.Equal(t, apperr.Forbidden, apperr.KindOf(err), id)
	}
	assert.Empty(t, repo.feedback)
	assert.Empty(t, n.sent)
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("")
	require.NoError(t, err)
	assert.Equal(t, TierBronze, tier)
	_, err = ParseTier("diamond")
	assert.Error(t, err)
}

func init() {
	log.SetOutput(io.Discard)
}
