package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/order"
)

func TestPriceCart_DiscountedProduct(t *testing.T) {
	products := map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Beat License", Price: 100, DiscountPercentage: 10},
	}

	items, totals := order.PriceCart([]order.CartLine{{ProductID: "p1", Quantity: 1}}, products)

	require.Len(t, items, 1)
	assert.InDelta(t, 10.0, items[0].Discount, 1e-6)
	assert.InDelta(t, 90.0, items[0].FinalPrice, 1e-6)
	assert.Equal(t, 100.0, items[0].UnitPrice)
	assert.Equal(t, "Beat License", items[0].ProductName)

	assert.InDelta(t, 90.0, totals.Total, 1e-6)
	assert.InDelta(t, 7.2, totals.Tax, 1e-6)
	assert.Equal(t, 0.0, totals.Shipping, "orders above the threshold ship free")
	assert.InDelta(t, 97.2, totals.Final, 1e-6)
}

func TestPriceCart_SmallOrderPaysShipping(t *testing.T) {
	products := map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Sticker Pack", Price: 30},
	}

	_, totals := order.PriceCart([]order.CartLine{{ProductID: "p1", Quantity: 1}}, products)

	assert.InDelta(t, 30.0, totals.Total, 1e-6)
	assert.InDelta(t, 2.4, totals.Tax, 1e-6)
	assert.InDelta(t, 9.99, totals.Shipping, 1e-6)
	assert.InDelta(t, 42.39, totals.Final, 1e-6)
}

func TestPriceCart_SkipsUnknownProducts(t *testing.T) {
	products := map[string]catalog.Product{
		"known": {ID: "known", Name: "Known", Price: 10},
	}

	items, totals := order.PriceCart([]order.CartLine{
		{ProductID: "known", Quantity: 2},
		{ProductID: "ghost", Quantity: 5},
	}, products)

	require.Len(t, items, 1)
	assert.Equal(t, "known", items[0].ProductID)
	assert.InDelta(t, 20.0, totals.Total, 1e-6)
}

func TestPriceCart_FinalAmountIdentity(t *testing.T) {
	products := map[string]catalog.Product{
		"a": {ID: "a", Name: "A", Price: 19.99, DiscountPercentage: 25},
		"b": {ID: "b", Name: "B", Price: 7.5},
		"c": {ID: "c", Name: "C", Price: 120, DiscountPercentage: 60},
	}

	carts := [][]order.CartLine{
		{{ProductID: "a", Quantity: 3}},
		{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 2}},
		{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}, {ProductID: "c", Quantity: 4}},
		{},
	}

	for _, cart := range carts {
		_, totals := order.PriceCart(cart, products)
		assert.InDelta(t, totals.Total+totals.Tax+totals.Shipping, totals.Final, 1e-6)
	}
}
