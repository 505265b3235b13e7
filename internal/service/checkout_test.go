package service_test

import (
	"context"
	"testing"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) service.CheckoutService {
	return service.NewCheckoutService(
		db,
		repository.NewUserRepository(db),
		repository.NewProductRepository(db),
		repository.NewOrderRepository(db),
	)
}

func Test_ProcessCheckout_OneOrderPerSeller(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	sellerA := seedSeller(t, db, "alice", "alice@shop.com")
	sellerB := seedSeller(t, db, "bob", "bob@shop.com")
	p1 := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "50.00"), SellerID: &sellerA.ID})
	p2 := seedProduct(t, db, &model.Product{Name: "Tea", Price: dec(t, "30.00"), SellerID: &sellerB.ID})

	svc := newCheckoutService(db)
	resp, err := svc.ProcessCheckout(ctx, user.Email, &dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: p1.ID, Quantity: 2, Price: dec(t, "50.00")},
			{ProductID: p2.ID, Quantity: 1, Price: dec(t, "30.00")},
		},
		PaymentMethod: "UPI",
		TransactionID: "txn-123",
	})
	require.NoError(t, err)
	require.Len(t, resp.OrderIDs, 2)
	assert.Equal(t, "SUCCESS", resp.Status)

	orderRepo := repository.NewOrderRepository(db)
	totalsBySeller := make(map[uint]string)
	for _, id := range resp.OrderIDs {
		order, err := orderRepo.FindByID(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, model.OrderPending, order.Status)
		assert.Equal(t, "UPI", order.PaymentMethod)
		assert.Equal(t, "txn-123", order.TransactionID)
		assert.Nil(t, order.DeliveredAt)
		require.NotNil(t, order.SellerID)
		totalsBySeller[*order.SellerID] = order.Total.StringFixed(2)

		// single-seller aggregate: every item's product belongs to the order's seller
		for _, item := range order.OrderItems {
			require.NotNil(t, item.Product.SellerID)
			assert.Equal(t, *order.SellerID, *item.Product.SellerID)
		}
	}

	assert.Equal(t, "100.00", totalsBySeller[sellerA.ID])
	assert.Equal(t, "30.00", totalsBySeller[sellerB.ID])
}

func Test_ProcessCheckout_ExactDecimalTotals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Spice", Price: dec(t, "0.10"), SellerID: &seller.ID})

	svc := newCheckoutService(db)
	resp, err := svc.ProcessCheckout(ctx, user.Email, &dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: p.ID, Quantity: 3, Price: dec(t, "0.10")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.OrderIDs, 1)

	order, err := repository.NewOrderRepository(db).FindByID(ctx, resp.OrderIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "0.30", order.Total.StringFixed(2))
}

func Test_ProcessCheckout_DropsMissingProducts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "25.00"), SellerID: &seller.ID})

	svc := newCheckoutService(db)
	resp, err := svc.ProcessCheckout(ctx, user.Email, &dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: p.ID, Quantity: 1, Price: dec(t, "25.00")},
			{ProductID: 9999, Quantity: 4, Price: dec(t, "10.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.OrderIDs, 1)

	order, err := repository.NewOrderRepository(db).FindByID(ctx, resp.OrderIDs[0])
	require.NoError(t, err)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, p.ID, order.OrderItems[0].ProductID)
	assert.Equal(t, "25.00", order.Total.StringFixed(2))
}

func Test_ProcessCheckout_SellerlessProductsGetOwnPartition(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	owned := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "20.00"), SellerID: &seller.ID})
	orphan := seedProduct(t, db, &model.Product{Name: "Misc", Price: dec(t, "5.00")})

	svc := newCheckoutService(db)
	resp, err := svc.ProcessCheckout(ctx, user.Email, &dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: owned.ID, Quantity: 1, Price: dec(t, "20.00")},
			{ProductID: orphan.ID, Quantity: 2, Price: dec(t, "5.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.OrderIDs, 2)

	orderRepo := repository.NewOrderRepository(db)
	var sellerless *model.Order
	for _, id := range resp.OrderIDs {
		order, err := orderRepo.FindByID(ctx, id)
		require.NoError(t, err)
		if order.SellerID == nil {
			sellerless = order
		}
	}

	require.NotNil(t, sellerless, "expected one order without a seller")
	assert.Equal(t, "10.00", sellerless.Total.StringFixed(2))
	require.Len(t, sellerless.OrderItems, 1)
	assert.Equal(t, orphan.ID, sellerless.OrderItems[0].ProductID)
}

func Test_ProcessCheckout_UnknownUser(t *testing.T) {
	db := newTestDB(t)

	svc := newCheckoutService(db)
	_, err := svc.ProcessCheckout(context.Background(), "nobody@example.com", &dto.CheckoutRequest{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func Test_ProcessCheckout_CopiesCartPriceNotLivePrice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	// live price differs from what the cart carries
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "99.00"), SellerID: &seller.ID})

	svc := newCheckoutService(db)
	resp, err := svc.ProcessCheckout(ctx, user.Email, &dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: p.ID, Quantity: 2, Price: dec(t, "40.00")},
		},
	})
	require.NoError(t, err)

	order, err := repository.NewOrderRepository(db).FindByID(ctx, resp.OrderIDs[0])
	require.NoError(t, err)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, "40.00", order.OrderItems[0].Price.StringFixed(2))
	assert.Equal(t, "80.00", order.Total.StringFixed(2))
}
