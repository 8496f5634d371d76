package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// CreateProductInput defines the data required to add a catalog entry.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

// ProductUsecase covers the catalog endpoints. Products are server-owned;
// a create is followed by a full list re-fetch into the session.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) error
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
