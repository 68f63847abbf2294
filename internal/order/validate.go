package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ropa-market/internal/apperr"
)

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return apperr.Validationf("%s must not be negative", field)
	}
	return nil
}

// validateRequest checks the request shape before any product lookups.
func validateRequest(in *CreateOrderRequest) error {
	if len(in.Items) == 0 {
		return apperr.Validationf("order must contain at least one item")
	}
	seen := make(map[string]struct{}, len(in.Items))
	for i := range in.Items {
		it := &in.Items[i]
		it.Title = strings.TrimSpace(it.Title)
		if it.Quantity <= 0 {
			return apperr.Validationf("items[%d].quantity must be at least 1", i)
		}
		if err := nonNegative("items price", it.Price); err != nil {
			return err
		}
		if it.ProductID == nil {
			if it.Title == "" {
				return apperr.Validationf("items[%d].title is required", i)
			}
			continue
		}
		// Listings are single pieces.
		if it.Quantity != 1 {
			return apperr.Validationf("items[%d].quantity must be 1 for a listed product", i)
		}
		if _, dup := seen[*it.ProductID]; dup {
			return apperr.Validationf("product %s appears more than once", *it.ProductID)
		}
		seen[*it.ProductID] = struct{}{}
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{{"subtotal", in.Subtotal}, {"tax", in.Tax}, {"shipping", in.Shipping}, {"total", in.Total}} {
		if err := nonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// verifyTotals requires subtotal = sum(price*quantity) and
// total = subtotal + tax + shipping.
func verifyTotals(in CreateOrderRequest) error {
	sum := decimal.Zero
	for _, it := range in.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	if !sum.Equal(in.Subtotal) {
		return apperr.Validationf("subtotal %s does not match items sum %s", in.Subtotal, sum)
	}
	want := in.Subtotal.Add(in.Tax).Add(in.Shipping)
	if !want.Equal(in.Total) {
		return apperr.Validationf("total %s does not match subtotal+tax+shipping %s", in.Total, want)
	}
	return nil
}
