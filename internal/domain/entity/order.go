package entity

// OrderStatus is the vendor-side lifecycle of an order.
type OrderStatus string

const (
	OrderOngoing      OrderStatus = "ongoing"
	OrderPreparing    OrderStatus = "preparing"
	OrderAwaitingBike OrderStatus = "awaiting-bike"
	OrderPickedUp     OrderStatus = "picked-up"
	OrderRejected     OrderStatus = "rejected"
	OrderCompleted    OrderStatus = "completed"
)

// IsValid reports whether the status is one of the vendor-side states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderOngoing, OrderPreparing, OrderAwaitingBike, OrderPickedUp, OrderRejected, OrderCompleted:
		return true
	default:
		return false
	}
}

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// Order is a server-owned order projection. RejectionNote is only set when
// the vendor rejected the order with a reason.
type Order struct {
	ID            string      `json:"id"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	IsRejected    bool        `json:"isRejected,omitempty"`
	RejectionNote string      `json:"rejectionNote,omitempty"`
}
