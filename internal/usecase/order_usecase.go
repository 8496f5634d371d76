package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// UpdateOrderInput advances one order through the vendor-side lifecycle.
// RejectionNote and IsRejected are only set when the vendor rejects.
type UpdateOrderInput struct {
	OrderID       string             `json:"orderId" validate:"required"`
	Status        entity.OrderStatus `json:"status" validate:"required"`
	RejectionNote string             `json:"rejectionNote,omitempty"`
	IsRejected    bool               `json:"isRejected,omitempty"`
}

// OrderUsecase covers the order endpoints. Orders are server-owned; an
// update is followed by a re-fetch of the same status view.
type OrderUsecase interface {
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, input UpdateOrderInput) error
}
