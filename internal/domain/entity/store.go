package entity

// VendorType classifies what kind of storefront a vendor runs.
type VendorType string

const (
	VendorRestaurant  VendorType = "restaurant"
	VendorSupermarket VendorType = "supermarket"
	VendorPharmacy    VendorType = "pharmacy"
	VendorSupplier    VendorType = "supplier"
	VendorGroceries   VendorType = "groceries"
)

// DeliveryType describes how a store fulfils orders.
type DeliveryType string

const (
	DeliveryInstant            DeliveryType = "instant"
	DeliveryPreorder           DeliveryType = "preorder"
	DeliveryInstantAndPreorder DeliveryType = "instant & preorder"
)

// StoreInfo is the wizard's first section: the public identity of the
// store being created.
type StoreInfo struct {
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	CoverImage    string       `json:"coverImage,omitempty"`
	OfficialEmail string       `json:"officialEmail"`
	OfficialPhone string       `json:"officialPhone"`
	Addresses     []string     `json:"addresses"`
	VendorType    VendorType   `json:"vendorType"`
	DeliveryType  DeliveryType `json:"deliveryType"`
}

// AccountInfo is the wizard's second section: where payouts land.
type AccountInfo struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// Operations is the wizard's third section: opening schedule.
type Operations struct {
	OpeningDays []string `json:"openingDays"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
}

// StoreAddress is the structured pickup address collected after the
// lettered sections. It is persisted alongside the section records but
// does not gate wizard progress.
type StoreAddress struct {
	Street    string  `json:"street,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Latitude  float64 `json:"lat,omitempty"`
	Longitude float64 `json:"long,omitempty"`
}

// StoreForm is the live wizard snapshot: every section's fields flattened
// into one record, mirroring how the sections spread into a single
// submission payload.
type StoreForm struct {
	StoreInfo
	AccountInfo
	Operations
	StoreAddress
}

// Store is the server-owned storefront returned by the backend once the
// wizard submits. The client never treats it as authoritative; it is
// re-fetched after every edit.
type Store struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	CoverImage    string       `json:"coverImage,omitempty"`
	OfficialEmail string       `json:"officialEmail"`
	OfficialPhone string       `json:"officialPhone"`
	Addresses     []string     `json:"addresses"`
	VendorType    VendorType   `json:"vendorType"`
	DeliveryType  DeliveryType `json:"deliveryType"`
	BankName      string       `json:"bankName,omitempty"`
	AccountNumber string       `json:"accountNumber,omitempty"`
	AccountName   string       `json:"accountName,omitempty"`
	OpeningDays   []string     `json:"openingDays,omitempty"`
	OpeningTime   string       `json:"openingTime,omitempty"`
	ClosingTime   string       `json:"closingTime,omitempty"`
}
