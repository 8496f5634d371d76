package entity

// CartItem is one line of the locally held cart. The product identity and
// price are copied from the catalog at add time; the server never sees the
// cart until checkout.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// MergeCartItem adds item to cart, summing quantities when a line with the
// same product id already exists. Order of existing lines is preserved; a
// new product is appended. The input slice is not mutated.
func MergeCartItem(cart []CartItem, item CartItem) []CartItem {
	merged := make([]CartItem, len(cart))
	copy(merged, cart)

	for i := range merged {
		if merged[i].ProductID == item.ProductID {
			merged[i].Quantity += item.Quantity

			return merged
		}
	}

	return append(merged, item)
}

// RemoveCartItem filters out the line with the given product id. Removing
// an absent id returns an equal cart, not an error.
func RemoveCartItem(cart []CartItem, productID string) []CartItem {
	filtered := make([]CartItem, 0, len(cart))
	for _, line := range cart {
		if line.ProductID != productID {
			filtered = append(filtered, line)
		}
	}

	return filtered
}
