// Package cart implements the session shopping cart: an ordered line-item
// collection with point-in-time price snapshots, persisted after every
// mutation.
package cart

import (
	"encoding/json"

	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry. Product is a snapshot taken at add time;
// catalog price changes never retroactively alter a cart.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   catalog.Product `json:"product"`
}

// Cart is the in-memory line-item collection for one session. It is not safe
// for concurrent use; the service serializes access per request.
type Cart struct {
	items []LineItem
	open  bool
}

// Restore rebuilds a cart from its persisted form. Anything unparseable is
// treated as no stored cart.
func Restore(raw string, open bool) *Cart {
	c := &Cart{open: open}
	if raw == "" {
		return c
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return c
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

// MarshalItems serializes the line items for persistence.
func (c *Cart) MarshalItems() (string, error) {
	items := c.items
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Add merges quantity into an existing line for the same product id or
// appends a new snapshot line. Quantities below 1 count as 1. Adding always
// opens the cart review flag.
func (c *Cart) Add(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.open = true
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, LineItem{ProductID: p.ID, Quantity: quantity, Product: p})
}

// Remove drops the line for a product id; absent ids are a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity, clamping to a minimum of 1. Absent
// ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the collection. The visibility flag is untouched.
func (c *Cart) Clear() {
	c.items = nil
}

// Count is the sum of all line quantities, recomputed on every read.
func (c *Cart) Count() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums quantity times snapshot price across all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Open reports the cart review visibility flag.
func (c *Cart) Open() bool { return c.open }

// SetOpen toggles the cart review visibility flag.
func (c *Cart) SetOpen(open bool) { c.open = open }
