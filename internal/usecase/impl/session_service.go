// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
)

// sessionKeys are everything Logout removes.
var sessionKeys = []string{
	repository.KeyUser,
	repository.KeyVendor,
	repository.KeyCart,
	repository.KeyWishlist,
	repository.KeyLocation,
	repository.KeyHasCompletedOnboarding,
}

// sessionService implements the SessionUsecase interface. State lives
// behind a mutex; every mutator commits in memory first and persists
// afterwards, so the write path is serialized per key and a storage
// failure never rolls back what a screen already sees.
type sessionService struct {
	store    repository.KeyValueStore
	tokens   service.TokenInspector
	location service.LocationProvider
	logger   *slog.Logger

	mu                     sync.Mutex
	hydrated               bool
	loading                bool
	user                   entity.User
	cart                   []entity.CartItem
	wishlist               []entity.Product
	vendor                 entity.Vendor
	loc                    *entity.Location
	hasCompletedOnboarding bool
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store repository.KeyValueStore,
	tokens service.TokenInspector,
	location service.LocationProvider,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:    store,
		tokens:   tokens,
		location: location,
		logger:   logger,
		loading:  true,
		user:     entity.DefaultUser(),
		cart:     []entity.CartItem{},
		wishlist: []entity.Product{},
		vendor:   entity.DefaultVendor(),
	}
}

// Hydrate loads persisted state. Keys load concurrently and commit in one
// critical section; loading flips false only after every load resolved.
// A second call is a no-op.
func (srv *sessionService) Hydrate(ctx context.Context) error {
	srv.mu.Lock()
	if srv.hydrated {
		srv.mu.Unlock()

		return nil
	}
	srv.hydrated = true
	srv.mu.Unlock()

	var (
		user       = entity.DefaultUser()
		cart       = []entity.CartItem{}
		wishlist   = []entity.Product{}
		vendor     = entity.DefaultVendor()
		loc        *entity.Location
		onboarded  bool
		foundUser  bool
		foundLoc   bool
		wg         sync.WaitGroup
	)

	load := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	load(func() { foundUser, _ = srv.store.Get(ctx, repository.KeyUser, &user) })
	load(func() { _, _ = srv.store.Get(ctx, repository.KeyCart, &cart) })
	load(func() { _, _ = srv.store.Get(ctx, repository.KeyWishlist, &wishlist) })
	load(func() { _, _ = srv.store.Get(ctx, repository.KeyVendor, &vendor) })
	load(func() {
		var stored entity.Location
		if found, _ := srv.store.Get(ctx, repository.KeyLocation, &stored); found {
			foundLoc = true
			loc = &stored
		}
	})
	load(func() { _, _ = srv.store.Get(ctx, repository.KeyHasCompletedOnboarding, &onboarded) })
	wg.Wait()

	// A stale bearer token must not present as a live session.
	tokenDropped := false
	if foundUser && user.Token != "" && srv.tokens.Expired(user.Token) {
		srv.logger.Info("Dropping expired session token", slog.String("email", user.Email))
		user = user.WithToken("")
		tokenDropped = true
	}

	srv.mu.Lock()
	srv.user = user
	srv.cart = cart
	srv.wishlist = wishlist
	srv.vendor = vendor
	if foundLoc {
		srv.loc = loc
	}
	srv.hasCompletedOnboarding = onboarded
	srv.loading = false
	srv.mu.Unlock()

	srv.logger.Debug("Session hydrated",
		slog.Bool("logged_in", user.IsLoggedIn),
		slog.Int("cart_items", len(cart)),
		slog.Bool("onboarded", onboarded))

	if tokenDropped {
		return srv.persist(ctx, repository.KeyUser, user)
	}

	return nil
}

func (srv *sessionService) Snapshot() usecase.SessionSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return usecase.SessionSnapshot{
		User:                   srv.user,
		Cart:                   copyCart(srv.cart),
		Wishlist:               append([]entity.Product{}, srv.wishlist...),
		Vendor:                 srv.vendor,
		Location:               copyLocation(srv.loc),
		HasCompletedOnboarding: srv.hasCompletedOnboarding,
		Loading:                srv.loading,
	}
}

func (srv *sessionService) User() entity.User {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.user
}

func (srv *sessionService) Cart() []entity.CartItem {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return copyCart(srv.cart)
}

func (srv *sessionService) Vendor() entity.Vendor {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.vendor
}

func (srv *sessionService) Location() *entity.Location {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return copyLocation(srv.loc)
}

func (srv *sessionService) HasCompletedOnboarding() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.hasCompletedOnboarding
}

func (srv *sessionService) Loading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loading
}

// SetUser replaces the identity and persists it.
func (srv *sessionService) SetUser(ctx context.Context, user entity.User) error {
	srv.mu.Lock()
	srv.user = user
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyUser, user)
}

// AddToCart merges by product id and persists the full resulting cart.
func (srv *sessionService) AddToCart(ctx context.Context, item entity.CartItem) error {
	srv.mu.Lock()
	updated := entity.MergeCartItem(srv.cart, item)
	srv.cart = updated
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyCart, updated)
}

// RemoveFromCart filters the cart and persists the result.
func (srv *sessionService) RemoveFromCart(ctx context.Context, productID string) error {
	srv.mu.Lock()
	updated := entity.RemoveCartItem(srv.cart, productID)
	srv.cart = updated
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyCart, updated)
}

func (srv *sessionService) SetWishlist(ctx context.Context, wishlist []entity.Product) error {
	srv.mu.Lock()
	srv.wishlist = wishlist
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyWishlist, wishlist)
}

// SetVendorStore merges the store into the vendor aggregate. The merge
// reads the live aggregate under the lock, never a stale copy, so rapid
// sequential setters do not lose each other's updates.
func (srv *sessionService) SetVendorStore(ctx context.Context, store *entity.Store) error {
	return srv.mergeVendor(ctx, func(v *entity.Vendor) { v.Store = store })
}

func (srv *sessionService) SetVendorProfile(ctx context.Context, profile *entity.VendorProfile) error {
	return srv.mergeVendor(ctx, func(v *entity.Vendor) { v.Profile = profile })
}

func (srv *sessionService) SetVendorProducts(ctx context.Context, products []entity.Product) error {
	return srv.mergeVendor(ctx, func(v *entity.Vendor) { v.Products = products })
}

func (srv *sessionService) SetVendorOrders(ctx context.Context, orders []entity.Order) error {
	return srv.mergeVendor(ctx, func(v *entity.Vendor) { v.Orders = orders })
}

func (srv *sessionService) mergeVendor(ctx context.Context, apply func(*entity.Vendor)) error {
	srv.mu.Lock()
	apply(&srv.vendor)
	updated := srv.vendor
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyVendor, updated)
}

// CompleteOnboarding sets the flag and persists it. There is no way back
// within a session.
func (srv *sessionService) CompleteOnboarding(ctx context.Context) error {
	srv.mu.Lock()
	srv.hasCompletedOnboarding = true
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyHasCompletedOnboarding, true)
}

// RefreshLocation asks the provider for the current position. A permission
// denial leaves the stored location untouched and reports success.
func (srv *sessionService) RefreshLocation(ctx context.Context) error {
	loc, err := srv.location.Current(ctx)
	if err != nil {
		if errors.Is(err, service.ErrLocationPermissionDenied) {
			srv.logger.Debug("Location permission denied, keeping previous location")

			return nil
		}

		return errors.Wrap(err, "refresh location")
	}

	srv.mu.Lock()
	srv.loc = loc
	srv.mu.Unlock()

	return srv.persist(ctx, repository.KeyLocation, loc)
}

// Logout resets everything to defaults and removes every persisted session
// key. Removals run to completion before returning because the caller
// routes straight to sign-in.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.user = entity.DefaultUser()
	srv.cart = []entity.CartItem{}
	srv.wishlist = []entity.Product{}
	srv.vendor = entity.DefaultVendor()
	srv.loc = nil
	srv.hasCompletedOnboarding = false
	srv.mu.Unlock()

	srv.logger.Info("Logging out, clearing persisted session")

	var firstErr error
	for _, key := range sessionKeys {
		if err := srv.store.Remove(ctx, key); err != nil {
			srv.logger.Warn("Failed to remove persisted key", slog.String("key", key), slog.Any("error", err))
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "remove %q", key)
			}
		}
	}

	return firstErr
}

// persist writes one key. The in-memory mutation already happened; on
// failure the error is logged and returned as a PersistError the caller
// may ignore.
func (srv *sessionService) persist(ctx context.Context, key string, value any) error {
	if err := srv.store.Set(ctx, key, value); err != nil {
		srv.logger.Warn("Persist failed, in-memory state kept",
			slog.String("key", key),
			slog.Any("error", err))

		return domainerrors.NewPersistError(key, err)
	}

	return nil
}

func copyCart(cart []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(cart))
	copy(out, cart)

	return out
}

func copyLocation(loc *entity.Location) *entity.Location {
	if loc == nil {
		return nil
	}
	copied := *loc

	return &copied
}
