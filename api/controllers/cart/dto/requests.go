package dto

// AddItemRequest adds a product to the cart. Quantity omitted or below 1 is
// treated as 1.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity,omitempty"`
}

// SetQuantityRequest updates one line's quantity; values below 1 clamp to 1.
// The product id rides in the URL, not the body.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
