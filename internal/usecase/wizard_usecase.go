package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/repository"
)

// Field is one completion-relevant form field: a name for display and an
// accessor into the live form snapshot. Accessors keep the declarative
// "which fields matter" configuration without reflection: a value counts
// as missing only when it is an empty string, a nil, or an empty list.
// Zero and false are present.
type Field struct {
	Name  string
	Value func(form *entity.StoreForm) any
}

// Section is one step of the store-onboarding wizard. Weight is the
// section's contribution to overall progress; weights across a
// configuration sum to 100. StorageKey and Record declare what SaveSection
// persists; a section may leave them unset when it has nothing of its own
// to store.
type Section struct {
	Key        string
	Title      string
	Weight     int
	StorageKey string
	Record     func(form *entity.StoreForm) any
	Fields     []Field
}

// DefaultSections is the production wizard configuration.
func DefaultSections() []Section {
	return []Section{
		{
			Key:        "A",
			Title:      "Store Information",
			Weight:     50,
			StorageKey: repository.KeyWizardStoreInfo,
			Record:     func(f *entity.StoreForm) any { return f.StoreInfo },
			Fields: []Field{
				{Name: "name", Value: func(f *entity.StoreForm) any { return f.StoreInfo.Name }},
				{Name: "description", Value: func(f *entity.StoreForm) any { return f.StoreInfo.Description }},
				{Name: "officialEmail", Value: func(f *entity.StoreForm) any { return f.OfficialEmail }},
				{Name: "officialPhone", Value: func(f *entity.StoreForm) any { return f.OfficialPhone }},
				{Name: "vendorType", Value: func(f *entity.StoreForm) any { return string(f.VendorType) }},
				{Name: "deliveryType", Value: func(f *entity.StoreForm) any { return string(f.DeliveryType) }},
				{Name: "addresses", Value: func(f *entity.StoreForm) any { return f.StoreInfo.Addresses }},
			},
		},
		{
			Key:        "B",
			Title:      "Account Details",
			Weight:     25,
			StorageKey: repository.KeyWizardAccountInfo,
			Record:     func(f *entity.StoreForm) any { return f.AccountInfo },
			Fields: []Field{
				{Name: "bankName", Value: func(f *entity.StoreForm) any { return f.BankName }},
				{Name: "accountNumber", Value: func(f *entity.StoreForm) any { return f.AccountNumber }},
				{Name: "accountName", Value: func(f *entity.StoreForm) any { return f.AccountName }},
			},
		},
		{
			Key:        "C",
			Title:      "Store Operations",
			Weight:     25,
			StorageKey: repository.KeyWizardOperations,
			Record:     func(f *entity.StoreForm) any { return f.Operations },
			Fields: []Field{
				{Name: "openingDays", Value: func(f *entity.StoreForm) any { return f.OpeningDays }},
				{Name: "openingTime", Value: func(f *entity.StoreForm) any { return f.OpeningTime }},
				{Name: "closingTime", Value: func(f *entity.StoreForm) any { return f.ClosingTime }},
			},
		},
	}
}

// WizardUsecase drives the linear store-onboarding wizard. Navigation is
// strictly gated: a section opens only when every section before it is
// complete. Saving a section persists its field subset without changing
// the active section; leaving is an explicit Back.
type WizardUsecase interface {
	// Hydrate loads each section's persisted data independently, so a
	// partially completed wizard survives an app restart.
	Hydrate(ctx context.Context) error

	Sections() []Section
	Form() entity.StoreForm

	// In-memory edits. Nothing persists until SaveSection.
	SetStoreInfo(info entity.StoreInfo)
	SetAccountInfo(info entity.AccountInfo)
	SetOperations(ops entity.Operations)

	// SetAddress stores the position picked on the map screen and
	// persists it immediately: the address belongs to no section, so it
	// has no save step of its own. A persistence failure comes back as
	// an ignorable PersistError; the in-memory form already holds the
	// address.
	SetAddress(ctx context.Context, addr entity.StoreAddress) error

	// SectionStatus re-evaluates every section against the live form.
	SectionStatus() map[string]bool

	// Progress is the weight sum of complete sections.
	Progress() int

	// CanOpen reports whether the section at index is enterable.
	CanOpen(index int) bool

	// Open activates a section; a locked or unknown key leaves the
	// active section unchanged and returns an error.
	Open(key string) error

	// Back returns to the overview. Always allowed.
	Back()

	// Active returns the active section key, or "" on the overview.
	Active() string

	// SaveSection persists the named section's declared record. A
	// section without a StorageKey has nothing to write and saves as a
	// no-op.
	SaveSection(ctx context.Context, key string) error

	// Submit sends the full form to the creation endpoint. It fails
	// with ErrFormIncomplete unless progress is 100.
	Submit(ctx context.Context) (*entity.Store, error)

	// Reset clears the form and removes the persisted section records.
	Reset(ctx context.Context) error
}
