// Package service defines the interfaces for external collaborators the
// application layer depends on (the REST backend, device location, token
// inspection, QR generation).
package service

import "context"

// APIClient is the boundary to the remote REST API. Do issues one request
// and decodes the JSON response into out when out is non-nil.
//
// Implementations attach the bearer token from the current session, return
// a *errors.APIError for any non-2xx response, and invoke the configured
// unauthorized hook before returning on HTTP 401.
type APIClient interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
