// Package seller handles seller verification requests and buyer feedback.
package seller

import (
	"fmt"
	"time"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Tier is the badge level granted on approval.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// ParseTier defaults an empty value to bronze.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case "":
		return TierBronze, nil
	case TierBronze, TierSilver, TierGold:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown seller tier %q", s)
}

type Verification struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	UserName     string             `json:"userName,omitempty"`
	UserEmail    string             `json:"userEmail,omitempty"`
	BusinessName string             `json:"businessName"`
	DocumentURL  string             `json:"documentUrl,omitempty"`
	Note         string             `json:"note,omitempty"`
	Status       VerificationStatus `json:"status"`
	Tier         Tier               `json:"tier,omitempty"`
	ReviewedBy   *string            `json:"reviewedBy"`
	ReviewedAt   *time.Time         `json:"reviewedAt"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type Feedback struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	BuyerID   string    `json:"buyerId"`
	BuyerName string    `json:"buyerName,omitempty"`
	SellerID  string    `json:"sellerId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary is a seller's feedback with its aggregate rating.
type Summary struct {
	SellerID string     `json:"sellerId"`
	Count    int        `json:"count"`
	Average  float64    `json:"average"`
	Items    []Feedback `json:"items"`
}

// ApplyRequest payload of a verification request.
// swagger:model ApplyRequest
type ApplyRequest struct {
	BusinessName string `json:"businessName" example:"Segunda Mano Boutique"`
	DocumentURL  string `json:"documentUrl"`
	Note         string `json:"note"`
}

// ReviewRequest payload of an admin decision.
// swagger:model ReviewRequest
type ReviewRequest struct {
	Approve bool   `json:"approve"`
	Tier    string `json:"tier" example:"silver"`
}

// FeedbackRequest payload.
// swagger:model FeedbackRequest
type FeedbackRequest struct {
	OrderID  string `json:"orderId"`
	SellerID string `json:"sellerId"`
	Rating   int    `json:"rating" example:"5"`
	Comment  string `json:"comment"`
}
