package service_test

import (
	"context"
	"testing"
	"time"

	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) service.OrderService {
	return service.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedOrder(t *testing.T, db *gorm.DB, order *model.Order) *model.Order {
	t.Helper()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func Test_UpdateStatus_DeliveredStampsTimestamp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, &model.Order{Status: model.OrderShipped, Total: dec(t, "10.00"), UserID: user.ID})

	svc := newOrderService(db)
	updated, err := svc.UpdateStatus(ctx, order.ID, model.OrderDelivered)
	require.NoError(t, err)

	assert.Equal(t, model.OrderDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt)
	assert.WithinDuration(t, time.Now(), *updated.DeliveredAt, time.Minute)
}

func Test_UpdateStatus_NonDeliveredLeavesTimestampAlone(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, &model.Order{Status: model.OrderPending, Total: dec(t, "10.00"), UserID: user.ID})

	svc := newOrderService(db)
	updated, err := svc.UpdateStatus(ctx, order.ID, model.OrderShipped)
	require.NoError(t, err)

	assert.Equal(t, model.OrderShipped, updated.Status)
	assert.Nil(t, updated.DeliveredAt)
}

func Test_UpdateStatus_OverwritesWithoutGuard(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	// unguarded overwrite, even backwards out of a terminal status
	order := seedOrder(t, db, &model.Order{Status: model.OrderCancelled, Total: dec(t, "10.00"), UserID: user.ID})

	svc := newOrderService(db)
	updated, err := svc.UpdateStatus(ctx, order.ID, model.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, updated.Status)
}

func Test_UpdateStatus_SameStatusIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, &model.Order{Status: model.OrderShipped, Total: dec(t, "10.00"), UserID: user.ID})

	svc := newOrderService(db)
	// re-applying the current status is a no-op, not a missing row
	updated, err := svc.UpdateStatus(ctx, order.ID, model.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, model.OrderShipped, updated.Status)
}

func Test_UpdateStatus_UnknownOrder(t *testing.T) {
	db := newTestDB(t)

	svc := newOrderService(db)
	_, err := svc.UpdateStatus(context.Background(), 9999, model.OrderShipped)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func Test_Cancel_Guards(t *testing.T) {
	cases := []struct {
		status  string
		allowed bool
	}{
		{model.OrderPending, true},
		{model.OrderConfirmed, true},
		{model.OrderRejected, true},
		{model.OrderShipped, false},
		{model.OrderDelivered, false},
		{model.OrderCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			db := newTestDB(t)
			ctx := context.Background()

			user := seedUser(t, db, "buyer@example.com")
			order := seedOrder(t, db, &model.Order{Status: tc.status, Total: dec(t, "10.00"), UserID: user.ID})

			svc := newOrderService(db)
			updated, err := svc.Cancel(ctx, order.ID)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, model.OrderCancelled, updated.Status)
			} else {
				assert.ErrorIs(t, err, service.ErrInvalidState)
			}
		})
	}
}

func Test_Reject_Guards(t *testing.T) {
	cases := []struct {
		status  string
		allowed bool
	}{
		{model.OrderPending, true},
		{model.OrderConfirmed, true},
		{model.OrderShipped, false},
		{model.OrderDelivered, false},
		{model.OrderCancelled, false},
		{model.OrderRejected, false},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			db := newTestDB(t)
			ctx := context.Background()

			user := seedUser(t, db, "buyer@example.com")
			order := seedOrder(t, db, &model.Order{Status: tc.status, Total: dec(t, "10.00"), UserID: user.ID})

			svc := newOrderService(db)
			updated, err := svc.Reject(ctx, order.ID, "out of stock")
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, model.OrderRejected, updated.Status)
				assert.Equal(t, "out of stock", updated.RejectionReason)
			} else {
				assert.ErrorIs(t, err, service.ErrInvalidState)
			}
		})
	}
}

func Test_Revenue_SumsDeliveredOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	alice := seedSeller(t, db, "alice", "alice@shop.com")
	bob := seedSeller(t, db, "bob", "bob@shop.com")

	seedOrder(t, db, &model.Order{Status: model.OrderDelivered, Total: dec(t, "100.00"), UserID: user.ID, SellerID: &alice.ID})
	seedOrder(t, db, &model.Order{Status: model.OrderDelivered, Total: dec(t, "40.00"), UserID: user.ID, SellerID: &alice.ID})
	seedOrder(t, db, &model.Order{Status: model.OrderDelivered, Total: dec(t, "25.00"), UserID: user.ID, SellerID: &bob.ID})
	seedOrder(t, db, &model.Order{Status: model.OrderPending, Total: dec(t, "999.00"), UserID: user.ID, SellerID: &alice.ID})
	seedOrder(t, db, &model.Order{Status: model.OrderCancelled, Total: dec(t, "999.00"), UserID: user.ID, SellerID: &bob.ID})

	svc := newOrderService(db)
	rev, err := svc.Revenue(ctx)
	require.NoError(t, err)

	assert.Equal(t, "165.00", rev.TotalRevenue.StringFixed(2))
	assert.Equal(t, 3, rev.DeliveredOrdersCount)
	require.Len(t, rev.DeliveredOrders, 3)

	aliceKey := "alice (alice@shop.com)"
	bobKey := "bob (bob@shop.com)"
	require.Contains(t, rev.SellerRevenue, aliceKey)
	require.Contains(t, rev.SellerRevenue, bobKey)
	assert.Equal(t, "140.00", rev.SellerRevenue[aliceKey].Revenue.StringFixed(2))
	assert.Equal(t, 2, rev.SellerRevenue[aliceKey].Orders)
	assert.Equal(t, "25.00", rev.SellerRevenue[bobKey].Revenue.StringFixed(2))
	assert.Equal(t, 1, rev.SellerRevenue[bobKey].Orders)
}

func Test_Revenue_SellerlessOrdersCountInTotalOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seedOrder(t, db, &model.Order{Status: model.OrderDelivered, Total: dec(t, "12.00"), UserID: user.ID})

	svc := newOrderService(db)
	rev, err := svc.Revenue(ctx)
	require.NoError(t, err)

	assert.Equal(t, "12.00", rev.TotalRevenue.StringFixed(2))
	assert.Equal(t, 1, rev.DeliveredOrdersCount)
	assert.Empty(t, rev.SellerRevenue)
}

func Test_ListUserOrders_UnknownUser(t *testing.T) {
	db := newTestDB(t)

	svc := newOrderService(db)
	_, err := svc.ListUserOrders(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func Test_ListSellerOrders_FiltersBySellerEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	alice := seedSeller(t, db, "alice", "alice@shop.com")
	bob := seedSeller(t, db, "bob", "bob@shop.com")

	mine := seedOrder(t, db, &model.Order{Status: model.OrderPending, Total: dec(t, "10.00"), UserID: user.ID, SellerID: &alice.ID})
	seedOrder(t, db, &model.Order{Status: model.OrderPending, Total: dec(t, "20.00"), UserID: user.ID, SellerID: &bob.ID})

	svc := newOrderService(db)
	orders, err := svc.ListSellerOrders(ctx, "alice@shop.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
}
