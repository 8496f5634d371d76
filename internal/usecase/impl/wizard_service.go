package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// wizardKeys are everything Reset removes.
var wizardKeys = []string{
	repository.KeyWizardStoreInfo,
	repository.KeyWizardAccountInfo,
	repository.KeyWizardOperations,
	repository.KeyWizardAddress,
}

// createStoreRequest is the submission payload: the full accumulated form.
type createStoreRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	CoverImage    string   `json:"coverImage,omitempty"`
	OfficialEmail string   `json:"officialEmail" validate:"required,email"`
	OfficialPhone string   `json:"officialPhone" validate:"required"`
	Addresses     []string `json:"addresses" validate:"required,min=1,dive,required"`
	VendorType    string   `json:"vendorType" validate:"required"`
	DeliveryType  string   `json:"deliveryType" validate:"required"`
	BankName      string   `json:"bankName" validate:"required"`
	AccountNumber string   `json:"accountNumber" validate:"required"`
	AccountName   string   `json:"accountName" validate:"required"`
	OpeningDays   []string `json:"openingDays" validate:"required,min=1"`
	OpeningTime   string   `json:"openingTime" validate:"required"`
	ClosingTime   string   `json:"closingTime" validate:"required"`
	Street        string   `json:"street,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	Latitude      float64  `json:"lat,omitempty"`
	Longitude     float64  `json:"long,omitempty"`
}

type createStoreResponse struct {
	Message any           `json:"message"`
	Store   *entity.Store `json:"store"`
}

// wizardService implements the WizardUsecase interface. The form and the
// active section live behind a mutex; completion is always re-derived from
// the live form, never cached per field.
type wizardService struct {
	store    repository.KeyValueStore
	api      service.APIClient
	session  usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
	sections []usecase.Section

	mu     sync.Mutex
	form   entity.StoreForm
	active string
}

// NewWizardService is the constructor for wizardService. It rejects a
// section configuration whose weights do not sum to 100.
func NewWizardService(
	store repository.KeyValueStore,
	api service.APIClient,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) (usecase.WizardUsecase, error) {
	return NewWizardServiceWithSections(store, api, session, logger, usecase.DefaultSections())
}

// NewWizardServiceWithSections builds a wizard over a custom section
// configuration.
func NewWizardServiceWithSections(
	store repository.KeyValueStore,
	api service.APIClient,
	session usecase.SessionUsecase,
	logger *slog.Logger,
	sections []usecase.Section,
) (usecase.WizardUsecase, error) {
	if len(sections) == 0 {
		return nil, errors.New("wizard needs at least one section")
	}

	total := 0
	for _, section := range sections {
		total += section.Weight
	}
	if total != 100 {
		return nil, errors.Errorf("section weights sum to %d, want 100", total)
	}

	return &wizardService{
		store:    store,
		api:      api,
		session:  session,
		validate: validator.New(),
		logger:   logger,
		sections: sections,
	}, nil
}

// Hydrate loads each section record independently so partial progress
// survives a restart. Missing records simply leave that part of the form
// blank.
func (srv *wizardService) Hydrate(ctx context.Context) error {
	var (
		info entity.StoreInfo
		acct entity.AccountInfo
		ops  entity.Operations
		addr entity.StoreAddress
	)

	foundInfo, _ := srv.store.Get(ctx, repository.KeyWizardStoreInfo, &info)
	foundAcct, _ := srv.store.Get(ctx, repository.KeyWizardAccountInfo, &acct)
	foundOps, _ := srv.store.Get(ctx, repository.KeyWizardOperations, &ops)
	foundAddr, _ := srv.store.Get(ctx, repository.KeyWizardAddress, &addr)

	srv.mu.Lock()
	if foundInfo {
		srv.form.StoreInfo = info
	}
	if foundAcct {
		srv.form.AccountInfo = acct
	}
	if foundOps {
		srv.form.Operations = ops
	}
	if foundAddr {
		srv.form.StoreAddress = addr
	}
	srv.mu.Unlock()

	return nil
}

func (srv *wizardService) Sections() []usecase.Section {
	return srv.sections
}

func (srv *wizardService) Form() entity.StoreForm {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.form
}

func (srv *wizardService) SetStoreInfo(info entity.StoreInfo) {
	srv.mu.Lock()
	srv.form.StoreInfo = info
	srv.mu.Unlock()
}

func (srv *wizardService) SetAccountInfo(info entity.AccountInfo) {
	srv.mu.Lock()
	srv.form.AccountInfo = info
	srv.mu.Unlock()
}

func (srv *wizardService) SetOperations(ops entity.Operations) {
	srv.mu.Lock()
	srv.form.Operations = ops
	srv.mu.Unlock()
}

// SetAddress commits the picked position and persists it in one step; the
// address has no section save of its own.
func (srv *wizardService) SetAddress(ctx context.Context, addr entity.StoreAddress) error {
	srv.mu.Lock()
	srv.form.StoreAddress = addr
	srv.mu.Unlock()

	return srv.persistRecord(ctx, repository.KeyWizardAddress, addr)
}

// SectionStatus re-evaluates every section against the live form. Sections
// sharing a field name each read the snapshot themselves.
func (srv *wizardService) SectionStatus() map[string]bool {
	srv.mu.Lock()
	form := srv.form
	srv.mu.Unlock()

	status := make(map[string]bool, len(srv.sections))
	for _, section := range srv.sections {
		status[section.Key] = sectionComplete(section, &form)
	}

	return status
}

// Progress sums the weights of complete sections.
func (srv *wizardService) Progress() int {
	status := srv.SectionStatus()

	progress := 0
	for _, section := range srv.sections {
		if status[section.Key] {
			progress += section.Weight
		}
	}

	return progress
}

// CanOpen gates navigation: the first section is always enterable, every
// later one only once its predecessor is complete.
func (srv *wizardService) CanOpen(index int) bool {
	if index < 0 || index >= len(srv.sections) {
		return false
	}
	if index == 0 {
		return true
	}

	return srv.SectionStatus()[srv.sections[index-1].Key]
}

// Open activates a section. Locked and unknown sections leave the active
// state untouched.
func (srv *wizardService) Open(key string) error {
	index := srv.sectionIndex(key)
	if index < 0 {
		return domainerrors.ErrSectionUnknown
	}
	if !srv.CanOpen(index) {
		srv.logger.Debug("Refusing to open locked section", slog.String("section", key))

		return domainerrors.ErrSectionLocked
	}

	srv.mu.Lock()
	srv.active = key
	srv.mu.Unlock()

	return nil
}

// Back returns to the overview.
func (srv *wizardService) Back() {
	srv.mu.Lock()
	srv.active = ""
	srv.mu.Unlock()
}

func (srv *wizardService) Active() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.active
}

// SaveSection persists the record the section declares. The active section
// does not change: leaving is an explicit Back, as a confirmation step.
func (srv *wizardService) SaveSection(ctx context.Context, key string) error {
	index := srv.sectionIndex(key)
	if index < 0 {
		return domainerrors.ErrSectionUnknown
	}

	section := srv.sections[index]
	if section.StorageKey == "" || section.Record == nil {
		srv.logger.Debug("Section declares no storage, nothing to save", slog.String("section", key))

		return nil
	}

	srv.mu.Lock()
	form := srv.form
	srv.mu.Unlock()

	if err := srv.persistRecord(ctx, section.StorageKey, section.Record(&form)); err != nil {
		return err
	}

	srv.logger.Debug("Saved wizard section", slog.String("section", key))

	return nil
}

// persistRecord writes one wizard record; failures come back as an
// ignorable PersistError, the in-memory form is already updated.
func (srv *wizardService) persistRecord(ctx context.Context, storageKey string, record any) error {
	if err := srv.store.Set(ctx, storageKey, record); err != nil {
		srv.logger.Warn("Failed to persist wizard record",
			slog.String("key", storageKey),
			slog.Any("error", err))

		return domainerrors.NewPersistError(storageKey, err)
	}

	return nil
}

// Submit validates and sends the accumulated form to the creation
// endpoint. On success the created store lands in the session and the
// persisted wizard records are cleared.
func (srv *wizardService) Submit(ctx context.Context) (*entity.Store, error) {
	if srv.Progress() != 100 {
		return nil, domainerrors.ErrFormIncomplete
	}

	srv.mu.Lock()
	form := srv.form
	srv.mu.Unlock()

	request := createStoreRequest{
		Name:          form.StoreInfo.Name,
		Description:   form.StoreInfo.Description,
		CoverImage:    form.CoverImage,
		OfficialEmail: form.OfficialEmail,
		OfficialPhone: form.OfficialPhone,
		Addresses:     form.StoreInfo.Addresses,
		VendorType:    string(form.VendorType),
		DeliveryType:  string(form.DeliveryType),
		BankName:      form.BankName,
		AccountNumber: form.AccountNumber,
		AccountName:   form.AccountName,
		OpeningDays:   form.OpeningDays,
		OpeningTime:   form.OpeningTime,
		ClosingTime:   form.ClosingTime,
		Street:        form.Street,
		City:          form.City,
		State:         form.State,
		Latitude:      form.StoreAddress.Latitude,
		Longitude:     form.StoreAddress.Longitude,
	}

	if err := srv.validate.Struct(request); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	var response createStoreResponse
	if err := srv.api.Do(ctx, http.MethodPost, "/store/create_store", request, &response); err != nil {
		return nil, errors.Wrap(err, "create store")
	}

	if response.Store != nil {
		if err := srv.session.SetVendorStore(ctx, response.Store); err != nil {
			srv.logger.Warn("Created store not persisted", slog.Any("error", err))
		}
	}

	if err := srv.Reset(ctx); err != nil {
		srv.logger.Warn("Failed to clear wizard records after submit", slog.Any("error", err))
	}

	srv.logger.Info("Store created")

	return response.Store, nil
}

// Reset clears the form and removes the persisted section records.
func (srv *wizardService) Reset(ctx context.Context) error {
	srv.mu.Lock()
	srv.form = entity.StoreForm{}
	srv.active = ""
	srv.mu.Unlock()

	var firstErr error
	for _, key := range wizardKeys {
		if err := srv.store.Remove(ctx, key); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "remove %q", key)
		}
	}

	return firstErr
}

func (srv *wizardService) sectionIndex(key string) int {
	for i, section := range srv.sections {
		if section.Key == key {
			return i
		}
	}

	return -1
}

// sectionComplete applies the presence rule to every field: empty string,
// nil, and empty list are missing; anything else, including zero and
// false, is present.
func sectionComplete(section usecase.Section, form *entity.StoreForm) bool {
	for _, field := range section.Fields {
		if !fieldPresent(field.Value(form)) {
			return false
		}
	}

	return true
}

func fieldPresent(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	default:
		return true
	}
}

// validationDetails flattens validator field errors into one banner
// message.
func validationDetails(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+" is invalid")
	}

	return strings.Join(parts, ", ")
}
