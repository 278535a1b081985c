package cart

import "go-storefront-api/internal/catalog"

// LineItem is one cart row. Price and SelectedVariant are snapshots taken at
// add time: a catalog price change must not silently alter an item already
// placed in the cart.
type LineItem struct {
	LineKey         catalog.ID       `json:"lineKey"`
	ProductID       catalog.ID       `json:"productId"`
	Name            string           `json:"name"`
	Price           float64          `json:"price"`
	Image           string           `json:"image,omitempty"`
	SelectedVariant *catalog.Variant `json:"selectedVariant,omitempty"`
	Quantity        int              `json:"quantity"`
}

// UnitPrice prefers the selected variant's snapshot price.
func (li LineItem) UnitPrice() float64 {
	if li.SelectedVariant != nil {
		return li.SelectedVariant.Price
	}
	return li.Price
}

// Cart is the aggregate persisted to durable storage. Items are ordered
// most-recently-touched first; the totals are recomputed inside every
// mutation and are never lazily stale.
type Cart struct {
	Items       []LineItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount float64    `json:"totalAmount"`
}

func (c *Cart) recompute() {
	totalItems := 0
	totalAmount := 0.0
	for _, item := range c.Items {
		totalItems += item.Quantity
		totalAmount += float64(item.Quantity) * item.UnitPrice()
	}
	c.TotalItems = totalItems
	c.TotalAmount = totalAmount
}
