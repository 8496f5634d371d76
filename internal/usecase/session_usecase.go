// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// SessionSnapshot is a point-in-time copy of the client state for readers.
// Mutating it has no effect on the session.
type SessionSnapshot struct {
	User                   entity.User
	Cart                   []entity.CartItem
	Wishlist               []entity.Product
	Vendor                 entity.Vendor
	Location               *entity.Location
	HasCompletedOnboarding bool
	Loading                bool
}

// SessionUsecase is the process-wide client state store. One instance owns
// the state for the lifetime of the app: create, Hydrate once at launch,
// mutate from event handlers, dispose with the surrounding fx app.
//
// Every mutator applies its in-memory update first and then persists; a
// persistence failure is returned but the in-memory state has already
// changed, so callers are free to ignore the error and keep the UI
// responsive.
type SessionUsecase interface {
	// Hydrate loads persisted state, falling back to defaults for
	// missing keys. Idempotent: only the first call does work.
	Hydrate(ctx context.Context) error

	Snapshot() SessionSnapshot
	User() entity.User
	Cart() []entity.CartItem
	Vendor() entity.Vendor
	Location() *entity.Location
	HasCompletedOnboarding() bool
	Loading() bool

	// SetUser replaces the identity, used after login and logout.
	SetUser(ctx context.Context, user entity.User) error

	// AddToCart merges by product id, summing quantities.
	AddToCart(ctx context.Context, item entity.CartItem) error

	// RemoveFromCart is a no-op when the id is absent.
	RemoveFromCart(ctx context.Context, productID string) error

	SetWishlist(ctx context.Context, wishlist []entity.Product) error

	// SetVendorStore, SetVendorProducts and SetVendorOrders merge into
	// the vendor aggregate against the live state and persist the whole
	// aggregate.
	SetVendorStore(ctx context.Context, store *entity.Store) error
	SetVendorProfile(ctx context.Context, profile *entity.VendorProfile) error
	SetVendorProducts(ctx context.Context, products []entity.Product) error
	SetVendorOrders(ctx context.Context, orders []entity.Order) error

	// CompleteOnboarding is irreversible within a session.
	CompleteOnboarding(ctx context.Context) error

	// RefreshLocation silently skips when the platform denies the
	// location permission.
	RefreshLocation(ctx context.Context) error

	// Logout resets everything to defaults and removes every persisted
	// session key before returning.
	Logout(ctx context.Context) error
}
