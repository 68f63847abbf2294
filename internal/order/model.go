package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusSold      Status = "sold"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCancelled, StatusSold:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransition reports whether an order may move from s to to. Only pending
// orders change; cancelled and sold are final.
func (s Status) CanTransition(to Status) bool {
	return s == to || s == StatusPending
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// CanTransition allows pending -> paid -> refunded.
func (p PaymentStatus) CanTransition(to PaymentStatus) bool {
	switch {
	case p == to:
		return true
	case p == PaymentPending && to == PaymentPaid:
		return true
	case p == PaymentPaid && to == PaymentRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCOD    PaymentMethod = "cod"
	MethodCard   PaymentMethod = "card"
	MethodEsewa  PaymentMethod = "esewa"
	MethodKhalti PaymentMethod = "khalti"
)

// ParsePaymentMethod defaults an empty value to cash on delivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "":
		return MethodCOD, nil
	case MethodCOD, MethodCard, MethodEsewa, MethodKhalti:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          *string         `json:"userId"`
	Items           []Item          `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Status          Status          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Item is an immutable snapshot of a purchased line; it does not follow later
// edits or deletion of the product.
type Item struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	ProductID *string         `json:"productId"`
	SellerID  *string         `json:"sellerId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// IsBuyer reports whether userID placed the order.
func (o *Order) IsBuyer(userID string) bool {
	return o.UserID != nil && *o.UserID == userID
}

// Change is a partial update applied by Repository.Update.
type Change struct {
	Status        *Status
	PaymentStatus *PaymentStatus
}
