package dto

// CartView is the cart as rendered for one session. Count and Subtotal are
// recomputed per response, never persisted.
type CartView struct {
	Items    []CartItemView `json:"items"`
	Count    int            `json:"count"`
	Subtotal string         `json:"subtotal"`
	Open     bool           `json:"open"`
}

type CartItemView struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	Currency  string `json:"currency"`
	Image     string `json:"image,omitempty"`
}
