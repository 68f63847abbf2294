package product

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle flag gating whether a product can be newly ordered.
type Status string

const (
	StatusUnsold        Status = "unsold"
	StatusOrderReceived Status = "order_received"
	StatusSold          Status = "sold"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnsold, StatusOrderReceived, StatusSold:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown product status %q", s)
}

type Product struct {
	ID             string              `json:"id"`
	SellerID       string              `json:"sellerId"`
	SellerName     string              `json:"sellerName,omitempty"`
	SellerVerified bool                `json:"sellerVerified"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	Price          decimal.Decimal     `json:"price"`
	OriginalPrice  decimal.NullDecimal `json:"originalPrice"`
	Brand          string              `json:"brand,omitempty"`
	Category       string              `json:"category,omitempty"`
	Size           string              `json:"size,omitempty"`
	Condition      string              `json:"condition,omitempty"`
	Location       string              `json:"location,omitempty"`
	Status         Status              `json:"status"`
	Images         []string            `json:"images"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Items  []Product `json:"items"`
}

// CreateProductRequest holds the multipart form fields of a new listing.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Title         string `form:"title"         example:"Levi's 501 denim jacket"`
	Description   string `form:"description"`
	Price         string `form:"price"         example:"2500"`
	OriginalPrice string `form:"originalPrice" example:"6000"`
	Brand         string `form:"brand"`
	Category      string `form:"category"      example:"jackets"`
	Size          string `form:"size"          example:"M"`
	Condition     string `form:"condition"     example:"like new"`
	Location      string `form:"location"      example:"Kathmandu"`
}

// UpdateStatusRequest is the admin override body.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"sold"`
}
