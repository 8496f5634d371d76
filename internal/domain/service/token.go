package service

import "time"

// TokenClaims is the identity the backend encodes into the bearer token.
type TokenClaims struct {
	ID        string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenInspector reads claims out of a bearer token without verifying the
// signature. The client holds no signing secret; verification is the
// server's job. Inspection only drives local decisions such as dropping an
// expired session at hydrate time.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
	Expired(token string) bool
}
