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

type productsResponse struct {
	Message  any              `json:"message"`
	Products []entity.Product `json:"products"`
}

// productService implements the ProductUsecase interface.
type productService struct {
	api      service.APIClient
	session  usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	api service.APIClient,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		api:      api,
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateProduct adds a catalog entry and re-fetches the full list.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	if err := srv.api.Do(ctx, http.MethodPost, "/products/create_product", input, nil); err != nil {
		return errors.Wrap(err, "create product")
	}

	// The server owns the catalog; refresh rather than guess the result.
	if _, err := srv.ListProducts(ctx); err != nil {
		srv.logger.Warn("Product created but list refresh failed", slog.Any("error", err))
	}

	return nil
}

// ListProducts fetches the catalog and merges it into the session.
func (srv *productService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var response productsResponse
	if err := srv.api.Do(ctx, http.MethodGet, "/products/get_products", nil, &response); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	if err := srv.session.SetVendorProducts(ctx, response.Products); err != nil {
		srv.logger.Warn("Fetched products not persisted", slog.Any("error", err))
	}

	return response.Products, nil
}
