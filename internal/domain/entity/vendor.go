package entity

// VendorProfile holds the vendor-facing account details shown on the
// profile screens.
type VendorProfile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Image    string `json:"image,omitempty"`
}

// Vendor is the nested aggregate for everything the signed-in vendor owns.
// Store stays nil until the onboarding wizard completes. Products and
// Orders are server-owned projections refreshed after every mutation.
type Vendor struct {
	Profile  *VendorProfile `json:"profile"`
	Store    *Store         `json:"store"`
	Products []Product      `json:"products"`
	Orders   []Order        `json:"orders"`
}

// DefaultVendor returns the empty aggregate used before onboarding and
// after logout.
func DefaultVendor() Vendor {
	return Vendor{
		Products: []Product{},
		Orders:   []Order{},
	}
}
