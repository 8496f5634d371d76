package entity

// Product is a catalog entry owned by the server. The client lists and
// creates products but always re-fetches after a mutation.
type Product struct {
	ID          string  `json:"id"`
	StoreID     string  `json:"storeId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}
