// Package geo implements the LocationProvider port. The HTTP provider
// resolves a coarse position from a geolocation endpoint; the denied
// provider models a platform where the location permission was refused.
package geo

import (
	"context"
	"log/slog"

	"vendorhub/config"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type httpProvider struct {
	rest     *resty.Client
	endpoint string
	logger   *slog.Logger
}

// New selects a provider from config: the HTTP lookup when geolocation is
// enabled, otherwise the denied provider so location refresh degrades to a
// silent skip.
func New(cfg *config.Config, logger *slog.Logger) service.LocationProvider {
	if cfg.Geolocation == nil || !cfg.Geolocation.Enabled || cfg.Geolocation.Endpoint == "" {
		return NewDeniedProvider()
	}

	return &httpProvider{
		rest:     resty.New().SetTimeout(cfg.API.Timeout),
		endpoint: cfg.Geolocation.Endpoint,
		logger:   logger,
	}
}

// Current resolves the device position from the geolocation endpoint.
func (p *httpProvider) Current(ctx context.Context) (*entity.Location, error) {
	var out struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	resp, err := p.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get(p.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "geolocation lookup")
	}
	if resp.IsError() {
		return nil, errors.Errorf("geolocation lookup failed with status %d", resp.StatusCode())
	}

	p.logger.Debug("Resolved location",
		slog.Float64("latitude", out.Latitude),
		slog.Float64("longitude", out.Longitude))

	return &entity.Location{Latitude: out.Latitude, Longitude: out.Longitude}, nil
}

type deniedProvider struct{}

// NewDeniedProvider creates a provider that always reports a permission
// denial.
func NewDeniedProvider() service.LocationProvider {
	return deniedProvider{}
}

func (deniedProvider) Current(ctx context.Context) (*entity.Location, error) {
	return nil, service.ErrLocationPermissionDenied
}
