// Package entity contains the core business objects of the client,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the locally held identity of the signed-in account. It pairs the
// display identity with the bearer credential every authenticated call is
// made with.
type User struct {
	ID         string   `json:"id"`         // Server-assigned account identifier. Empty until the first login.
	Username   string   `json:"username"`   // The account's display name.
	Email      string   `json:"email"`      // The account's primary email, also the login identifier.
	Token      string   `json:"token"`      // Bearer credential attached to authenticated requests.
	IsLoggedIn bool     `json:"isLoggedIn"` // True iff Token is non-empty. Kept explicit because screens branch on it.
	Addresses  []string `json:"addresses,omitempty"` // Saved delivery addresses, if any.
}

// DefaultUser returns the signed-out identity the session falls back to on
// first launch, hydration miss, or logout.
func DefaultUser() User {
	return User{Addresses: []string{}}
}

// WithToken returns a copy of the user carrying the given bearer token,
// keeping the IsLoggedIn invariant in sync.
func (u User) WithToken(token string) User {
	u.Token = token
	u.IsLoggedIn = token != ""

	return u
}
