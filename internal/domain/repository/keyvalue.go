// Package repository defines the persistence ports the application layer
// depends on. Concrete implementations live under internal/infra.
package repository

import "context"

// Persisted keys. Every piece of client state lives under one of these;
// logout removes the session keys and a wizard reset removes the wizard
// keys.
const (
	KeyUser                   = "user"
	KeyVendor                 = "vendor"
	KeyCart                   = "cart"
	KeyWishlist               = "wishlist"
	KeyLocation               = "location"
	KeyHasCompletedOnboarding = "hasCompletedOnboarding"

	KeyWizardStoreInfo   = "vendor_storeInfo"
	KeyWizardAccountInfo = "vendor_accountInfo"
	KeyWizardOperations  = "vendor_operations"
	KeyWizardAddress     = "vendor_address"
)

// KeyValueStore is the contract for the on-device secure store. Values are
// JSON-serialized on write and parsed on read.
//
// Get reports found=false for a missing key and, deliberately, for a value
// that cannot be decrypted or parsed: a corrupt record fails closed rather
// than surfacing an error the screens cannot act on. Implementations for
// platforms without secure storage may make Set and Remove silent no-ops
// and always report found=false; callers must tolerate non-persistence.
type KeyValueStore interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, out any) (found bool, err error)
	Remove(ctx context.Context, key string) error
}
