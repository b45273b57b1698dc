package order

import "github.com/onimix/artist-platform/internal/catalog"

// Pricing policy constants. Flat rates, not configurable.
const (
	taxRate               = 0.08
	freeShippingThreshold = 50.0
	standardShippingCost  = 9.99
)

// Totals is the order-level result of pricing a cart.
type Totals struct {
	Total    float64 // sum of discounted line prices, pre tax and shipping
	Tax      float64
	Shipping float64
	Discount float64 // absolute amount saved across all lines
	Final    float64 // Total + Tax + Shipping
}

// PriceCart freezes the given cart against a product snapshot. Lines whose
// product id is missing from the snapshot are skipped rather than failing the
// whole cart; stale references cost the caller a line, not the order.
func PriceCart(lines []CartLine, products map[string]catalog.Product) ([]Item, Totals) {
	items := make([]Item, 0, len(lines))
	var t Totals

	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			continue
		}

		qty := float64(line.Quantity)
		discount := p.Price * qty * p.DiscountPercentage / 100
		finalUnit := p.Price * (1 - p.DiscountPercentage/100)

		items = append(items, Item{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Quantity:           line.Quantity,
			UnitPrice:          p.Price,
			DiscountPercentage: p.DiscountPercentage,
			FinalPrice:         finalUnit,
			Discount:           discount,
		})

		t.Total += finalUnit * qty
		t.Discount += discount
	}

	t.Tax = t.Total * taxRate
	if t.Total > freeShippingThreshold {
		t.Shipping = 0
	} else {
		t.Shipping = standardShippingCost
	}
	t.Final = t.Total + t.Tax + t.Shipping

	return items, t
}
