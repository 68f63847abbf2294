package message

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/notify"
)

const maxBody = 2000

type Notifier interface {
	NotifyQuiet(ctx context.Context, userID, typ string, payload any)
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) Send(ctx context.Context, from string, in SendRequest) (*Message, error) {
	body := strings.TrimSpace(in.Body)
	switch {
	case body == "":
		return nil, apperr.Validationf("body is required")
	case utf8.RuneCountInString(body) > maxBody:
		return nil, apperr.Validationf("body must be at most %d characters", maxBody)
	case in.RecipientID == "":
		return nil, apperr.Validationf("recipientId is required")
	case in.RecipientID == from:
		return nil, apperr.Validationf("cannot message yourself")
	}
	if _, err := uuid.Parse(in.RecipientID); err != nil {
		return nil, apperr.Validationf("recipientId must be a uuid")
	}

	m := &Message{
		ID:          uuid.NewString(),
		SenderID:    from,
		RecipientID: in.RecipientID,
		ProductID:   in.ProductID,
		Body:        body,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, ErrUnknownRecipient) {
			return nil, apperr.NotFoundf("recipient not found")
		}
		return nil, apperr.Internalw("send error", err)
	}
	log.Printf("[message] id=%s from=%s to=%s", m.ID, from, m.RecipientID)

	s.notifier.NotifyQuiet(ctx, m.RecipientID, notify.TypeMessage, map[string]any{
		"messageId": m.ID,
		"from":      from,
		"productId": m.ProductID,
		"preview":   preview(body),
	})
	return m, nil
}

func preview(s string) string {
	const n = 80
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}

func (s *Service) Conversation(ctx context.Context, userID, peerID string, limit, offset int) ([]Message, error) {
	out, err := s.repo.Conversation(ctx, userID, peerID, limit, offset)
	if err != nil {
		return nil, apperr.Internalw("conversation error", err)
	}
	return out, nil
}

func (s *Service) Threads(ctx context.Context, userID string) ([]Thread, error) {
	out, err := s.repo.Threads(ctx, userID)
	if err != nil {
		return nil, apperr.Internalw("threads error", err)
	}
	return out, nil
}
