package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// EditStoreInput carries the editable storefront fields. Zero-value fields
// are omitted from the request so the backend only sees actual edits.
type EditStoreInput struct {
	Name          string   `json:"name,omitempty"`
	Description   string   `json:"description,omitempty"`
	CoverImage    string   `json:"coverImage,omitempty"`
	OfficialEmail string   `json:"officialEmail,omitempty" validate:"omitempty,email"`
	OfficialPhone string   `json:"officialPhone,omitempty"`
	Addresses     []string `json:"addresses,omitempty"`
	OpeningDays   []string `json:"openingDays,omitempty"`
	OpeningTime   string   `json:"openingTime,omitempty"`
	ClosingTime   string   `json:"closingTime,omitempty"`
}

// StoreUsecase covers the storefront endpoints once a store exists. The
// store is server-owned: every mutation is followed by a re-fetch into the
// session.
type StoreUsecase interface {
	GetStore(ctx context.Context) (*entity.Store, error)
	EditStore(ctx context.Context, input EditStoreInput) (*entity.Store, error)

	// ShareQR returns a PNG QR code of the current store's public link.
	ShareQR(ctx context.Context) ([]byte, error)
}
