package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/MikeMC777/ropa-market/internal/apperr"
)

// Service writes the durable notification row first and only then pushes it
// to the user's open streams.
type Service struct {
	repo Repository
	hub  *Hub
}

func NewService(repo Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) Hub() *Hub { return s.hub }

func (s *Service) Notify(ctx context.Context, userID, typ string, payload any) (*Notification, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperr.Internalw("encode notification", err)
	}
	n := &Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    typ,
		Payload: raw,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, apperr.Internalw("store notification", err)
	}
	delivered := s.hub.Send(userID, EventNotification, n)
	log.Printf("[notify] user=%s type=%s streams=%d", userID, typ, delivered)
	return n, nil
}

// NotifyQuiet is Notify for side effects of an already committed write: a
// failure is logged, never returned.
func (s *Service) NotifyQuiet(ctx context.Context, userID, typ string, payload any) {
	if _, err := s.Notify(ctx, userID, typ, payload); err != nil {
		log.Printf("[notify] user=%s type=%s failed: %v", userID, typ, err)
	}
}

func (s *Service) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]Notification, error) {
	out, err := s.repo.ListForUser(ctx, userID, unreadOnly, limit)
	if err != nil {
		return nil, apperr.Internalw("list notifications", err)
	}
	return out, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFoundf("notification not found")
		}
		return apperr.Internalw("mark read", err)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, apperr.Internalw("mark read", err)
	}
	return n, nil
}
