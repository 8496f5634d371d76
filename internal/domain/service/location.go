package service

import (
	"context"

	"vendorhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationPermissionDenied models the platform refusing the location
// permission. The session store treats it as a soft decline and leaves the
// stored location unchanged.
var ErrLocationPermissionDenied = errors.New("location permission denied")

// LocationProvider resolves the device's current position.
type LocationProvider interface {
	Current(ctx context.Context) (*entity.Location, error)
}
