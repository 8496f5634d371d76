// Package auth provides client-side inspection of the bearer token the
// backend issues at login.
package auth

import (
	"time"

	"vendorhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector creates a TokenInspector. Tokens are decoded without
// signature verification: the client never holds the signing secret, and
// the claims only drive local decisions.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{
		parser: jwt.NewParser(),
	}
}

// Inspect decodes the token's claims.
func (i *tokenInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	out := &service.TokenClaims{}
	if id, ok := claims["id"].(string); ok {
		out.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

// Expired reports whether the token carries an exp claim in the past. A
// token that cannot be parsed counts as expired; a token without an exp
// claim does not.
func (i *tokenInspector) Expired(token string) bool {
	claims, err := i.Inspect(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}

	return claims.ExpiresAt.Before(time.Now())
}
