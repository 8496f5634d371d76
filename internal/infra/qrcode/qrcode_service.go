// Package qrcode generates shareable storefront QR codes.
package qrcode

import (
	"fmt"
	"strings"

	"vendorhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStoreQR generates a PNG QR code encoding the store's public link
func (s *qrcodeService) GenerateStoreQR(storeID string) ([]byte, error) {
	if storeID == "" {
		return nil, errors.New("store id must not be empty")
	}

	code, err := qrcode.New(s.StoreLink(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "generate PNG")
	}

	return pngBytes, nil
}

// StoreLink returns the public storefront link for the given store
func (s *qrcodeService) StoreLink(storeID string) string {
	return fmt.Sprintf("%s/store/%s", s.baseURL, storeID)
}
