package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

func testShippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName: "Test User",
		Address:  "1 Main St",
		City:     "Springfield",
		State:    "IL",
		ZipCode:  "62701",
		Phone:    "555-0100",
	}
}

func TestOrderService_CreateOrder_COD(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, "buyer@example.com", models.RoleUser)
	product := createTestProduct(t, r, "Mug", 12.50, 10)

	order, err := svc.CreateOrder(ctx, user.ID, transport.CreateOrderRequest{
		Items:           []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPendingCOD, order.Status)
	assert.Equal(t, float64(CODShippingCharge), order.ShippingCharges)
	assert.Equal(t, 25.0+CODShippingCharge, order.Total)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "Order placed with COD", order.StatusHistory[0].Note)

	updated, err := r.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock)
}

func TestOrderService_CreateOrder_Online_NoSurcharge(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, "buyer@example.com", models.RoleUser)
	product := createTestProduct(t, r, "Shoes", 64.00, 5)

	order, err := svc.CreateOrder(ctx, user.ID, transport.CreateOrderRequest{
		Items:           []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   models.PaymentOnline,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Zero(t, order.ShippingCharges)
	assert.Equal(t, 64.00, order.Total)
}

func TestOrderService_CreateOrder_SnapshotsPriceAndTitle(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, "buyer@example.com", models.RoleUser)
	product := createTestProduct(t, r, "Headphones", 79.99, 3)

	order, err := svc.CreateOrder(ctx, user.ID, transport.CreateOrderRequest{
		Items:           []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   models.PaymentOnline,
	})
	require.NoError(t, err)

	product.Title = "Renamed"
	product.Price = 999
	require.NoError(t, r.SaveProduct(ctx, product))

	reread, err := r.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, reread.Items, 1)
	assert.Equal(t, "Headphones", reread.Items[0].Title)
	assert.Equal(t, 79.99, reread.Items[0].Price)
}

func TestOrderService_CreateOrder_InsufficientStock_NothingWritten(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, "buyer@example.com", models.RoleUser)
	plenty := createTestProduct(t, r, "Plenty", 10, 50)
	scarce := createTestProduct(t, r, "Scarce", 10, 1)

	_, err := svc.CreateOrder(ctx, user.ID, transport.CreateOrderRequest{
		Items: []transport.OrderItemRequest{
			{ProductID: plenty.ID, Quantity: 5},
			{ProductID: scarce.ID, Quantity: 2},
		},
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   models.PaymentCOD,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// a rejected order must not touch stock, even for lines that would fit
	p1, err := r.GetProduct(ctx, plenty.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, p1.Stock)

	orders, err := r.ListOrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, "buyer@example.com", models.RoleUser)
	product := createTestProduct(t, r, "Mug", 12.50, 10)

	tests := []struct {
		name    string
		req     transport.CreateOrderRequest
		wantErr error
	}{
		{
			name:    "no items",
			req:     transport.CreateOrderRequest{PaymentMethod: models.PaymentCOD},
			wantErr: ErrValidation,
		},
		{
			name: "bad payment method",
			req: transport.CreateOrderRequest{
				Items:         []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
				PaymentMethod: "CHEQUE",
			},
			wantErr: ErrValidation,
		},
		{
			name: "zero quantity",
			req: transport.CreateOrderRequest{
				Items:         []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 0}},
				PaymentMethod: models.PaymentCOD,
			},
			wantErr: ErrValidation,
		},
		{
			name: "unknown product",
			req: transport.CreateOrderRequest{
				Items:         []transport.OrderItemRequest{{ProductID: 9999, Quantity: 1}},
				PaymentMethod: models.PaymentCOD,
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, user.ID, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	owner := createTestUser(t, r, "owner@example.com", models.RoleUser)
	other := createTestUser(t, r, "other@example.com", models.RoleUser)
	admin := createTestUser(t, r, "admin@example.com", models.RoleAdmin)
	product := createTestProduct(t, r, "Mug", 12.50, 10)

	order, err := svc.CreateOrder(ctx, owner.ID, transport.CreateOrderRequest{
		Items:           []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)

	_, err = svc.GetOrder(ctx, order.ID, owner.ID, models.RoleUser)
	assert.NoError(t, err)

	_, err = svc.GetOrder(ctx, order.ID, other.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetOrder(ctx, order.ID, admin.ID, models.RoleAdmin)
	assert.NoError(t, err)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := createTestUser(t, r, "buyer@example.com", models.RoleUser)
	product := createTestProduct(t, r, "Mug", 12.50, 10)

	order, err := svc.CreateOrder(ctx, user.ID, transport.CreateOrderRequest{
		Items:           []transport.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   models.PaymentOnline,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, "Status updated to Shipped", updated.StatusHistory[1].Note)

	_, err = svc.UpdateStatus(ctx, order.ID, "Lost In Transit")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, 9999, models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

// The per-item decrement is unconditional: two orders that each pass the
// stock check before either decrement lands can drive stock negative. The
// repo call itself never guards against it.
func TestOrderService_DecrementIsUnconditional(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := createTestProduct(t, r, "Scarce", 10, 1)

	require.NoError(t, r.DecrementStock(ctx, product.ID, 1))
	require.NoError(t, r.DecrementStock(ctx, product.ID, 1))

	updated, err := r.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Stock)
}
