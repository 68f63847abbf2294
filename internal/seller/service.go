package seller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/mailer"
	"github.com/MikeMC777/ropa-market/internal/notify"
)

type Notifier interface {
	NotifyQuiet(ctx context.Context, userID, typ string, payload any)
}

type Service struct {
	verifications VerificationRepo
	feedback      FeedbackRepo
	notifier      Notifier
	mail          mailer.Mailer
}

func NewService(verifications VerificationRepo, feedback FeedbackRepo, notifier Notifier, mail mailer.Mailer) *Service {
	return &Service{verifications: verifications, feedback: feedback, notifier: notifier, mail: mail}
}

func (s *Service) Apply(ctx context.Context, userID string, in ApplyRequest) (*Verification, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, apperr.Validationf("businessName is required")
	}
	v := &Verification{
		ID:           uuid.NewString(),
		UserID:       userID,
		BusinessName: name,
		DocumentURL:  strings.TrimSpace(in.DocumentURL),
		Note:         strings.TrimSpace(in.Note),
	}
	if err := s.verifications.CreateVerification(ctx, v); err != nil {
		if errors.Is(err, ErrPendingExists) {
			return nil, apperr.Conflictf("a verification request is already pending")
		}
		return nil, apperr.Internalw("apply error", err)
	}
	log.Printf("[seller] verification requested id=%s user=%s", v.ID, userID)
	return v, nil
}

func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]Verification, error) {
	out, err := s.verifications.ListVerifications(ctx, VerificationPending, limit, offset)
	if err != nil {
		return nil, apperr.Internalw("list error", err)
	}
	return out, nil
}

func (s *Service) Review(ctx context.Context, id string, in ReviewRequest, adminID string) (*Verification, error) {
	tier, err := ParseTier(in.Tier)
	if err != nil {
		return nil, apperr.Validationf("tier must be bronze, silver or gold")
	}
	v, err := s.verifications.Review(ctx, id, in.Approve, tier, adminID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, apperr.NotFoundf("verification not found")
		case errors.Is(err, ErrAlreadyReviewed):
			return nil, apperr.Conflictf("verification already reviewed")
		}
		return nil, apperr.Internalw("review error", err)
	}
	log.Printf("[seller] verification id=%s user=%s status=%s by=%s", v.ID, v.UserID, v.Status, adminID)

	s.notifier.NotifyQuiet(ctx, v.UserID, notify.TypeSellerReview, map[string]any{
		"verificationId": v.ID,
		"status":         v.Status,
		"tier":           v.Tier,
	})
	if v.UserEmail != "" {
		subject, body := reviewMail(v)
		if err := s.mail.Send(v.UserEmail, subject, body); err != nil {
			log.Printf("[seller] verification mail to user=%s failed: %v", v.UserID, err)
		}
	}
	return v, nil
}

func reviewMail(v *Verification) (subject, body string) {
	if v.Status == VerificationApproved {
		return "Your seller account is verified",
			fmt.Sprintf("Hi %s,\n\n%s is now a verified seller (%s tier).\n", v.UserName, v.BusinessName, v.Tier)
	}
	return "Your seller verification was not approved",
		fmt.Sprintf("Hi %s,\n\nWe could not verify %s. You can submit a new request at any time.\n", v.UserName, v.BusinessName)
}

func (s *Service) CreateFeedback(ctx context.Context, buyerID string, in FeedbackRequest) (*Feedback, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validationf("rating must be between 1 and 5")
	}
	if in.OrderID == "" || in.SellerID == "" {
		return nil, apperr.Validationf("orderId and sellerId are required")
	}
	if !isUUID(in.OrderID) || !isUUID(in.SellerID) {
		return nil, apperr.Validationf("orderId and sellerId must be UUIDs")
	}
	if in.SellerID == buyerID {
		return nil, apperr.Validationf("cannot rate yourself")
	}
	f := &Feedback{
		ID:       uuid.NewString(),
		OrderID:  in.OrderID,
		BuyerID:  buyerID,
		SellerID: in.SellerID,
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
	}
	if err := s.feedback.CreateFeedback(ctx, f); err != nil {
		switch {
		case errors.Is(err, ErrNotEligible):
			return nil, apperr.Forbiddenf("only the buyer of a sold order with this seller's items can leave feedback")
		case errors.Is(err, ErrDuplicate):
			return nil, apperr.Conflictf("feedback already submitted for this order")
		}
		return nil, apperr.Internalw("feedback error", err)
	}
	log.Printf("[seller] feedback id=%s seller=%s rating=%d", f.ID, f.SellerID, f.Rating)

	s.notifier.NotifyQuiet(ctx, f.SellerID, notify.TypeFeedbackReceived, map[string]any{
		"feedbackId": f.ID,
		"orderId":    f.OrderID,
		"rating":     f.Rating,
	})
	return f, nil
}

func (s *Service) ListFeedback(ctx context.Context, sellerID string, limit, offset int) (*Summary, error) {
	out, err := s.feedback.ListFeedback(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, apperr.Internalw("list error", err)
	}
	return out, nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
