package invoice

// Fixed rates. The form exposes tax-name and currency fields, but the
// calculation always uses these constants.
const (
	DiscountRate = 0.10
	TaxRate      = 0.105
)

// Totals holds the derived figures for an item list.
type Totals struct {
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives subtotal, discount, tax and total from the item
// list. Tax applies to the discounted base. No rounding happens here;
// currency formatting is a render-time concern. An empty list yields all
// zeros.
func ComputeTotals(items []Item) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Amount
	}
	discount := subtotal * DiscountRate
	tax := (subtotal - discount) * TaxRate
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}
