package product

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/auth"
)

type Service struct {
	repo   Repository
	images *ImageStore
}

func NewService(repo Repository, images *ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

func parseMoney(field, s string, required bool) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			return decimal.NullDecimal{}, apperr.Validationf("%s is required", field)
		}
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.NullDecimal{}, apperr.Validationf("%s must be a non-negative number", field)
	}
	return decimal.NewNullDecimal(d.Round(2)), nil
}

func (s *Service) Create(ctx context.Context, sellerID string, in CreateProductRequest, files []*multipart.FileHeader) (*Product, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Validationf("title is required")
	}
	price, err := parseMoney("price", in.Price, true)
	if err != nil {
		return nil, err
	}
	original, err := parseMoney("originalPrice", in.OriginalPrice, false)
	if err != nil {
		return nil, err
	}
	if err := CheckFiles(files); err != nil {
		return nil, apperr.Validationf("%s", err.Error())
	}

	paths, err := s.images.SaveAll(files)
	if err != nil {
		return nil, apperr.Internalw("could not save images", err)
	}
	p := &Product{
		ID:            uuid.NewString(),
		SellerID:      sellerID,
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		Price:         price.Decimal,
		OriginalPrice: original,
		Brand:         strings.TrimSpace(in.Brand),
		Category:      strings.ToLower(strings.TrimSpace(in.Category)),
		Size:          strings.TrimSpace(in.Size),
		Condition:     strings.TrimSpace(in.Condition),
		Location:      strings.TrimSpace(in.Location),
		Status:        StatusUnsold,
		Images:        paths,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.images.Remove(paths)
		return nil, apperr.Internalw("create error", err)
	}
	log.Printf("[product] created id=%s seller=%s images=%d", p.ID, sellerID, len(paths))
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("product not found")
		}
		return nil, apperr.Internalw("get error", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, q Query) ([]Product, error) {
	out, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, apperr.Internalw("list error", err)
	}
	return out, nil
}

// Delete is allowed to the owner and to admins.
func (s *Service) Delete(ctx context.Context, id string, caller auth.Identity) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.SellerID != caller.UserID && !caller.IsAdmin() {
		return apperr.Forbiddenf("not the owner of this product")
	}
	paths, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFoundf("product not found")
		}
		return apperr.Internalw("delete error", err)
	}
	s.images.Remove(paths)
	return nil
}

// SetStatus is the admin manual override of the lifecycle flag.
func (s *Service) SetStatus(ctx context.Context, id, status string) (*Product, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, apperr.Validationf("status must be unsold, order_received or sold")
	}
	if err := s.repo.SetStatus(ctx, id, st); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("product not found")
		}
		return nil, apperr.Internalw("update error", err)
	}
	return s.Get(ctx, id)
}
