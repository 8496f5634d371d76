package service

// QRCodeService generates shareable QR codes for a storefront.
type QRCodeService interface {
	// GenerateStoreQR returns a PNG QR code encoding the public link of
	// the given store.
	GenerateStoreQR(storeID string) ([]byte, error)

	// StoreLink returns the public link the QR encodes.
	StoreLink(storeID string) string
}
