package impl

import (
	"context"
	"log/slog"
	"net/http"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
)

type ordersResponse struct {
	Message any            `json:"message"`
	Orders  []entity.Order `json:"orders"`
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	api     service.APIClient
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	api service.APIClient,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		api:     api,
		session: session,
		logger:  logger,
	}
}

// ListByStatus fetches the store's orders in one status view and merges
// them into the session.
func (srv *orderService) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	store := srv.session.Vendor().Store
	if store == nil {
		return nil, domainerrors.ErrStoreNotCreated
	}

	var response ordersResponse
	path := "/orders/get_orders_by_storeId/" + store.ID + "/" + string(status)
	if err := srv.api.Do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	if err := srv.session.SetVendorOrders(ctx, response.Orders); err != nil {
		srv.logger.Warn("Fetched orders not persisted", slog.Any("error", err))
	}

	return response.Orders, nil
}

// UpdateOrder advances an order and re-fetches the same status view, since
// the order usually leaves it.
func (srv *orderService) UpdateOrder(ctx context.Context, input usecase.UpdateOrderInput) error {
	if input.OrderID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("orderId is required")
	}
	if !input.Status.IsValid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	store := srv.session.Vendor().Store
	if store == nil {
		return domainerrors.ErrStoreNotCreated
	}

	if err := srv.api.Do(ctx, http.MethodPut, "/orders/update_order/"+store.ID, input, nil); err != nil {
		return errors.Wrap(err, "update order")
	}

	srv.logger.Info("Order updated",
		slog.String("order_id", input.OrderID),
		slog.String("status", string(input.Status)))

	if _, err := srv.ListByStatus(ctx, input.Status); err != nil {
		srv.logger.Warn("Order updated but list refresh failed", slog.Any("error", err))
	}

	return nil
}
