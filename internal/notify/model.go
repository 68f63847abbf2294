// Package notify stores user notifications and pushes them to open event streams.
package notify

import (
	"encoding/json"
	"time"
)

// Notification types.
const (
	TypeMessage          = "message"
	TypeOrderReceived    = "order_received"
	TypeOrderUpdated     = "order_updated"
	TypeSellerReview     = "seller_verification"
	TypeFeedbackReceived = "feedback_received"
)

// Stream event names.
const (
	EventBootstrap    = "bootstrap"
	EventNotification = "notification"
)

type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	ReadAt    *time.Time      `json:"readAt"`
	CreatedAt time.Time       `json:"createdAt"`
}
