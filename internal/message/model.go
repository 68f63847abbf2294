// Package message carries direct messages between buyers and sellers.
package message

import "time"

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	ProductID   *string   `json:"productId"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Thread is the latest message exchanged with one counterpart.
type Thread struct {
	UserID   string  `json:"userId"`
	UserName string  `json:"userName"`
	Last     Message `json:"last"`
}

// SendRequest payload of a new message.
// swagger:model SendRequest
type SendRequest struct {
	RecipientID string  `json:"recipientId"`
	ProductID   *string `json:"productId"`
	Body        string  `json:"body"`
}
