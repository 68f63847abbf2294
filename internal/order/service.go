package order

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/notify"
	"github.com/MikeMC777/ropa-market/internal/product"
)

type Service struct {
	repo         Repository
	products     ProductReader
	notifier     Notifier
	verifyTotals bool
}

func NewService(repo Repository, products ProductReader, notifier Notifier, verifyTotals bool) *Service {
	return &Service{repo: repo, products: products, notifier: notifier, verifyTotals: verifyTotals}
}

// Create places an order for buyerID, or a guest order when buyerID is nil.
func (s *Service) Create(ctx context.Context, buyerID *string, in CreateOrderRequest) (*Order, error) {
	if err := validateRequest(&in); err != nil {
		return nil, err
	}
	method, err := ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, apperr.Validationf("paymentMethod must be cod, card, esewa or khalti")
	}

	items := make([]Item, 0, len(in.Items))
	for i, it := range in.Items {
		item := Item{
			ID:        uuid.NewString(),
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price.Round(2),
			Quantity:  it.Quantity,
		}
		if it.ProductID != nil {
			p, err := s.products.GetByID(ctx, *it.ProductID)
			if err != nil {
				if errors.Is(err, product.ErrNotFound) || apperr.KindOf(err) == apperr.NotFound {
					return nil, apperr.NotFoundf("product %s not found", *it.ProductID)
				}
				return nil, apperr.Internalw("product lookup", err)
			}
			if buyerID != nil && p.SellerID == *buyerID {
				return nil, apperr.Validationf("cannot order your own product %s", p.ID)
			}
			if p.Status != product.StatusUnsold {
				return nil, apperr.Conflictf("product %s is not available", p.ID)
			}
			if s.verifyTotals && !p.Price.Equal(it.Price) {
				return nil, apperr.Validationf("items[%d].price %s does not match listed price %s", i, it.Price, p.Price)
			}
			seller := p.SellerID
			item.SellerID = &seller
			if item.Title == "" {
				item.Title = p.Title
			}
		}
		items = append(items, item)
	}
	if s.verifyTotals {
		if err := verifyTotals(in); err != nil {
			return nil, err
		}
	}

	o := &Order{
		ID:              uuid.NewString(),
		UserID:          buyerID,
		Subtotal:        in.Subtotal.Round(2),
		Tax:             in.Tax.Round(2),
		Shipping:        in.Shipping.Round(2),
		Total:           in.Total.Round(2),
		PaymentMethod:   method,
		PaymentStatus:   PaymentPending,
		Status:          StatusPending,
		ShippingAddress: in.ShippingAddress,
	}
	if err := s.repo.Create(ctx, o, items); err != nil {
		var rerr *ReservationError
		if errors.As(err, &rerr) {
			if errors.Is(err, product.ErrNotFound) {
				return nil, apperr.NotFoundf("product %s not found", rerr.ProductID)
			}
			return nil, apperr.Conflictf("product %s is not available", rerr.ProductID)
		}
		return nil, apperr.Internalw("create error", err)
	}
	log.Printf("[order] created id=%s items=%d total=%s", o.ID, len(items), o.Total)

	for seller, titles := range sellerTitles(items) {
		s.notifier.NotifyQuiet(ctx, seller, notify.TypeOrderReceived, map[string]any{
			"orderId": o.ID,
			"items":   titles,
		})
	}
	return o, nil
}

func sellerTitles(items []Item) map[string][]string {
	out := map[string][]string{}
	for _, it := range items {
		if it.SellerID == nil {
			continue
		}
		out[*it.SellerID] = append(out[*it.SellerID], it.Title)
	}
	return out
}

func (s *Service) ListForBuyer(ctx context.Context, buyerID string, limit, offset int) ([]Order, error) {
	out, err := s.repo.ListByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		return nil, apperr.Internalw("list error", err)
	}
	return out, nil
}

func (s *Service) ListForSeller(ctx context.Context, sellerID string, limit, offset int) ([]Order, error) {
	out, err := s.repo.ListBySeller(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, apperr.Internalw("list error", err)
	}
	return out, nil
}

// Get returns the order to its buyer, to a seller with an item in it (items
// narrowed to theirs) or to an admin. Anyone else sees not found.
func (s *Service) Get(ctx context.Context, id string, caller auth.Identity) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("order not found")
		}
		return nil, apperr.Internalw("get error", err)
	}
	if caller.IsAdmin() || o.IsBuyer(caller.UserID) {
		return o, nil
	}
	mine := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		if it.SellerID != nil && *it.SellerID == caller.UserID {
			mine = append(mine, it)
		}
	}
	if len(mine) == 0 {
		return nil, apperr.NotFoundf("order not found")
	}
	o.Items = mine
	return o, nil
}

// Update is the admin path. Moving to cancelled releases reserved products and
// moving to sold marks them sold, in the same transaction as the status write.
func (s *Service) Update(ctx context.Context, id string, in UpdateOrderRequest, actor auth.Identity) (*Order, error) {
	var ch Change
	if in.Status != nil {
		st, err := ParseStatus(*in.Status)
		if err != nil {
			return nil, apperr.Validationf("status must be pending, cancelled or sold")
		}
		ch.Status = &st
	}
	if in.PaymentStatus != nil {
		ps, err := ParsePaymentStatus(*in.PaymentStatus)
		if err != nil {
			return nil, apperr.Validationf("paymentStatus must be pending, paid or refunded")
		}
		ch.PaymentStatus = &ps
	}
	if ch.Status == nil && ch.PaymentStatus == nil {
		return nil, apperr.Validationf("status or paymentStatus is required")
	}
	return s.apply(ctx, id, ch, actor)
}

// Cancel lets the buyer withdraw a pending order.
func (s *Service) Cancel(ctx context.Context, id string, caller auth.Identity) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("order not found")
		}
		return nil, apperr.Internalw("get error", err)
	}
	if !o.IsBuyer(caller.UserID) && !caller.IsAdmin() {
		return nil, apperr.NotFoundf("order not found")
	}
	if o.Status != StatusPending {
		return nil, apperr.Conflictf("order is %s and cannot be cancelled", o.Status)
	}
	st := StatusCancelled
	return s.apply(ctx, id, Change{Status: &st}, caller)
}

func (s *Service) apply(ctx context.Context, id string, ch Change, actor auth.Identity) (*Order, error) {
	actorID := actor.UserID
	o, err := s.repo.Update(ctx, id, ch, &actorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, apperr.NotFoundf("order not found")
		case errors.Is(err, ErrInvalidTransition):
			return nil, apperr.Wrap(apperr.Conflict, err.Error(), err)
		}
		return nil, apperr.Internalw("update error", err)
	}
	log.Printf("[order] updated id=%s status=%s payment=%s actor=%s", o.ID, o.Status, o.PaymentStatus, actorID)

	if o.UserID != nil && *o.UserID != actorID {
		s.notifier.NotifyQuiet(ctx, *o.UserID, notify.TypeOrderUpdated, map[string]any{
			"orderId":       o.ID,
			"status":        o.Status,
			"paymentStatus": o.PaymentStatus,
		})
	}
	return o, nil
}
