package order

import "github.com/shopspring/decimal"

// CreateOrderItem payload of a line item.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID *string         `json:"productId" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Title     string          `json:"title"     example:"Zara wool coat"`
	Price     decimal.Decimal `json:"price"     swaggertype:"number" example:"100"`
	Quantity  int             `json:"quantity"  example:"1"`
}

// CreateOrderRequest payload of order creation. Totals are supplied by the client.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal" swaggertype:"number" example:"100"`
	Tax             decimal.Decimal   `json:"tax"      swaggertype:"number" example:"13"`
	Shipping        decimal.Decimal   `json:"shipping" swaggertype:"number" example:"200"`
	Total           decimal.Decimal   `json:"total"    swaggertype:"number" example:"313"`
	PaymentMethod   string            `json:"paymentMethod" example:"cod"`
	ShippingAddress ShippingAddress   `json:"shippingAddress"`
}

// UpdateOrderRequest payload of an admin update; absent fields are unchanged.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Status        *string `json:"status"        example:"cancelled"`
	PaymentStatus *string `json:"paymentStatus" example:"paid"`
}
