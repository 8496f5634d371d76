package impl

import (
	"context"
	"log/slog"
	"net/http"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type storeResponse struct {
	Message any           `json:"message"`
	Store   *entity.Store `json:"store"`
}

// storeService implements the StoreUsecase interface.
type storeService struct {
	api      service.APIClient
	session  usecase.SessionUsecase
	qr       service.QRCodeService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	api service.APIClient,
	session usecase.SessionUsecase,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		api:      api,
		session:  session,
		qr:       qr,
		validate: validator.New(),
		logger:   logger,
	}
}

// GetStore fetches the vendor's storefront and merges it into the session.
func (srv *storeService) GetStore(ctx context.Context) (*entity.Store, error) {
	var response storeResponse
	if err := srv.api.Do(ctx, http.MethodGet, "/store/get_store", nil, &response); err != nil {
		return nil, errors.Wrap(err, "get store")
	}
	if response.Store == nil {
		return nil, domainerrors.ErrStoreNotCreated
	}

	if err := srv.session.SetVendorStore(ctx, response.Store); err != nil {
		srv.logger.Warn("Fetched store not persisted", slog.Any("error", err))
	}

	return response.Store, nil
}

// EditStore updates the storefront and re-fetches it; the server copy is
// authoritative.
func (srv *storeService) EditStore(ctx context.Context, input usecase.EditStoreInput) (*entity.Store, error) {
	store := srv.session.Vendor().Store
	if store == nil {
		return nil, domainerrors.ErrStoreNotCreated
	}

	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	if err := srv.api.Do(ctx, http.MethodPut, "/store/edit_store/"+store.ID, input, nil); err != nil {
		return nil, errors.Wrap(err, "edit store")
	}

	return srv.GetStore(ctx)
}

// ShareQR returns a PNG QR code of the current store's public link.
func (srv *storeService) ShareQR(ctx context.Context) ([]byte, error) {
	store := srv.session.Vendor().Store
	if store == nil {
		return nil, domainerrors.ErrStoreNotCreated
	}

	png, err := srv.qr.GenerateStoreQR(store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate store QR")
	}

	return png, nil
}
