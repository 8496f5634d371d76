package impl

import (
	"context"
	"net/http"
	"testing"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	orders  usecase.OrderUsecase
	session usecase.SessionUsecase
	api     *fakeAPI
}

func createTestOrders(t *testing.T) orderFixtures {
	t.Helper()

	api := newFakeAPI()
	session := NewSessionService(newMemoryStore(), neverExpireTokens{}, deniedLocation{}, newDiscardLogger())
	orders := NewOrderService(api, session, newDiscardLogger())

	return orderFixtures{orders: orders, session: session, api: api}
}

func TestOrderService_ListByStatus(t *testing.T) {
	fx := createTestOrders(t)
	ctx := context.Background()

	require.NoError(t, fx.session.SetVendorStore(ctx, &entity.Store{ID: "s1"}))
	fx.api.respond(http.MethodGet, "/orders/get_orders_by_storeId/s1/ongoing", map[string]any{
		"orders": []entity.Order{{ID: "o1", Status: entity.OrderOngoing, TotalAmount: 3500}},
	})

	orders, err := fx.orders.ListByStatus(ctx, entity.OrderOngoing)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Len(t, fx.session.Vendor().Orders, 1)
}

func TestOrderService_ListRejectsUnknownStatus(t *testing.T) {
	fx := createTestOrders(t)

	_, err := fx.orders.ListByStatus(context.Background(), entity.OrderStatus("shipped"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
	assert.Zero(t, fx.api.callCount())
}

func TestOrderService_ListRequiresStore(t *testing.T) {
	fx := createTestOrders(t)

	_, err := fx.orders.ListByStatus(context.Background(), entity.OrderOngoing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotCreated))
}

func TestOrderService_UpdateRefetchesStatusView(t *testing.T) {
	fx := createTestOrders(t)
	ctx := context.Background()

	require.NoError(t, fx.session.SetVendorStore(ctx, &entity.Store{ID: "s1"}))
	fx.api.respond(http.MethodGet, "/orders/get_orders_by_storeId/s1/preparing", map[string]any{
		"orders": []entity.Order{},
	})

	err := fx.orders.UpdateOrder(ctx, usecase.UpdateOrderInput{
		OrderID: "o1",
		Status:  entity.OrderPreparing,
	})
	require.NoError(t, err)

	first := fx.api.calls[0]
	assert.Equal(t, http.MethodPut, first.method)
	assert.Equal(t, "/orders/update_order/s1", first.path)
	assert.Equal(t, "/orders/get_orders_by_storeId/s1/preparing", fx.api.lastCall().path)
}

func TestOrderService_UpdateRequiresOrderID(t *testing.T) {
	fx := createTestOrders(t)
	ctx := context.Background()

	require.NoError(t, fx.session.SetVendorStore(ctx, &entity.Store{ID: "s1"}))

	err := fx.orders.UpdateOrder(ctx, usecase.UpdateOrderInput{Status: entity.OrderPreparing})
	require.Error(t, err)
	assert.Zero(t, fx.api.callCount())
}

func TestOrderService_UpdateWithRejection(t *testing.T) {
	fx := createTestOrders(t)
	ctx := context.Background()

	require.NoError(t, fx.session.SetVendorStore(ctx, &entity.Store{ID: "s1"}))
	fx.api.respond(http.MethodGet, "/orders/get_orders_by_storeId/s1/rejected", map[string]any{
		"orders": []entity.Order{},
	})

	err := fx.orders.UpdateOrder(ctx, usecase.UpdateOrderInput{
		OrderID:       "o1",
		Status:        entity.OrderRejected,
		RejectionNote: "out of stock",
		IsRejected:    true,
	})
	require.NoError(t, err)

	input, ok := fx.api.calls[0].body.(usecase.UpdateOrderInput)
	require.True(t, ok)
	assert.True(t, input.IsRejected)
	assert.Equal(t, "out of stock", input.RejectionNote)
}
