package service_test

import (
	"context"
	"testing"
	"time"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReturnService(db *gorm.DB) service.ReturnService {
	return service.NewReturnService(
		repository.NewReturnRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
	)
}

// seedDeliveredOrder creates a DELIVERED order for user containing one item
// per product, delivered the given number of days ago.
func seedDeliveredOrder(t *testing.T, db *gorm.DB, user *model.User, daysAgo int, products ...*model.Product) *model.Order {
	t.Helper()

	deliveredAt := time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
	order := &model.Order{
		Status:      model.OrderDelivered,
		Total:       dec(t, "10.00"),
		CreatedAt:   deliveredAt.Add(-48 * time.Hour),
		DeliveredAt: &deliveredAt,
		UserID:      user.ID,
	}
	require.NoError(t, db.Create(order).Error)

	for _, p := range products {
		item := &model.OrderItem{OrderID: order.ID, ProductID: p.ID, Quantity: 1, Price: p.Price}
		require.NoError(t, db.Create(item).Error)
	}
	return order
}

func Test_CreateReturn_PicksFirstReturnableItem(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	plain := seedProduct(t, db, &model.Product{Name: "Salt", Price: dec(t, "2.00"), SellerID: &seller.ID})
	returnable := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 1, plain, returnable)

	svc := newReturnService(db)
	ret, err := svc.CreateReturn(ctx, &dto.ReturnCreateRequest{
		OrderID:   order.ID,
		UserEmail: user.Email,
		Reason:    "damaged",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ReturnTypeReturn, ret.Type)
	assert.Equal(t, model.ReturnPending, ret.Status)
	assert.Equal(t, returnable.ID, ret.ProductID)
	assert.Equal(t, "damaged", ret.Reason)
}

func Test_CreateReturn_RequiresDeliveredOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, &model.Order{Status: model.OrderShipped, Total: dec(t, "10.00"), UserID: user.ID})

	svc := newReturnService(db)
	_, err := svc.CreateReturn(ctx, &dto.ReturnCreateRequest{OrderID: order.ID, UserEmail: user.Email})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func Test_CreateReturn_RejectsForeignOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	seedUser(t, db, "other@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, owner, 1, p)

	svc := newReturnService(db)
	_, err := svc.CreateReturn(ctx, &dto.ReturnCreateRequest{OrderID: order.ID, UserEmail: "other@example.com"})
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func Test_CreateReturn_OnePerOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 1, p)

	svc := newReturnService(db)
	req := &dto.ReturnCreateRequest{OrderID: order.ID, UserEmail: user.Email}
	_, err := svc.CreateReturn(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateReturn(ctx, req)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func Test_CreateReturn_NoReturnableProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Salt", Price: dec(t, "2.00"), SellerID: &seller.ID})
	order := seedDeliveredOrder(t, db, user, 1, p)

	svc := newReturnService(db)
	_, err := svc.CreateReturn(ctx, &dto.ReturnCreateRequest{OrderID: order.ID, UserEmail: user.Email})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func Test_RequestReturn_WithinWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 5, p)

	svc := newReturnService(db)
	ret, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID:   order.ID,
		ProductID: p.ID,
		Type:      model.ReturnTypeReturn,
		Reason:    "wrong size",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReturnTypeReturn, ret.Type)
	assert.Equal(t, model.ReturnPending, ret.Status)
	assert.Equal(t, p.ID, ret.ProductID)
}

func Test_RequestReturn_OutsideWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 8, p)

	svc := newReturnService(db)
	_, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID:   order.ID,
		ProductID: p.ID,
		Type:      model.ReturnTypeReturn,
	})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func Test_RequestReturn_ReplacementUsesItsOwnWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	// return window already closed, replacement window still open
	p := seedProduct(t, db, &model.Product{
		Name: "Mixer", Price: dec(t, "80.00"), SellerID: &seller.ID,
		Returnable: true, ReturnDays: 3,
		Replaceable: true, ReplacementDays: 15,
	})
	order := seedDeliveredOrder(t, db, user, 10, p)

	svc := newReturnService(db)
	_, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID: order.ID, ProductID: p.ID, Type: model.ReturnTypeReturn,
	})
	assert.ErrorIs(t, err, service.ErrInvalidState)

	ret, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID: order.ID, ProductID: p.ID, Type: model.ReturnTypeReplacement,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReturnTypeReplacement, ret.Type)
}

func Test_RequestReturn_InvalidType(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 1, p)

	svc := newReturnService(db)
	_, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID: order.ID, ProductID: p.ID, Type: "REFUND",
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func Test_RequestReturn_NoDeliveryDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	// marked DELIVERED but the timestamp was never stamped
	order := seedOrder(t, db, &model.Order{Status: model.OrderDelivered, Total: dec(t, "8.00"), UserID: user.ID})
	item := &model.OrderItem{OrderID: order.ID, ProductID: p.ID, Quantity: 1, Price: p.Price}
	require.NoError(t, db.Create(item).Error)

	svc := newReturnService(db)
	_, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID: order.ID, ProductID: p.ID, Type: model.ReturnTypeReturn,
	})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func Test_RequestReturn_AllowsSecondReturnOnSameOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 1, p)

	svc := newReturnService(db)
	req := &dto.ReturnDetailRequest{OrderID: order.ID, ProductID: p.ID, Type: model.ReturnTypeReturn}
	_, err := svc.RequestReturn(ctx, req)
	require.NoError(t, err)

	// the detailed path does not enforce one-per-order
	_, err = svc.RequestReturn(ctx, req)
	require.NoError(t, err)

	returns, err := svc.ListAllReturns(ctx)
	require.NoError(t, err)
	assert.Len(t, returns, 2)
}

func Test_ReturnUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	seller := seedSeller(t, db, "alice", "alice@shop.com")
	p := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &seller.ID, Returnable: true, ReturnDays: 7})
	order := seedDeliveredOrder(t, db, user, 1, p)

	svc := newReturnService(db)
	ret, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{
		OrderID: order.ID, ProductID: p.ID, Type: model.ReturnTypeReturn,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, ret.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", updated.Status)

	// re-applying the current status is a no-op, not a missing row
	updated, err = svc.UpdateStatus(ctx, ret.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", updated.Status)

	_, err = svc.UpdateStatus(ctx, 9999, "APPROVED")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func Test_ListUserAndSellerReturns(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, "buyer@example.com")
	other := seedUser(t, db, "other@example.com")
	alice := seedSeller(t, db, "alice", "alice@shop.com")
	bob := seedSeller(t, db, "bob", "bob@shop.com")
	aliceProduct := seedProduct(t, db, &model.Product{Name: "Rice", Price: dec(t, "8.00"), SellerID: &alice.ID, Returnable: true, ReturnDays: 7})
	bobProduct := seedProduct(t, db, &model.Product{Name: "Tea", Price: dec(t, "3.00"), SellerID: &bob.ID, Returnable: true, ReturnDays: 7})

	buyerOrder := seedDeliveredOrder(t, db, buyer, 1, aliceProduct)
	otherOrder := seedDeliveredOrder(t, db, other, 1, bobProduct)

	svc := newReturnService(db)
	_, err := svc.RequestReturn(ctx, &dto.ReturnDetailRequest{OrderID: buyerOrder.ID, ProductID: aliceProduct.ID, Type: model.ReturnTypeReturn})
	require.NoError(t, err)
	_, err = svc.RequestReturn(ctx, &dto.ReturnDetailRequest{OrderID: otherOrder.ID, ProductID: bobProduct.ID, Type: model.ReturnTypeReturn})
	require.NoError(t, err)

	mine, err := svc.ListUserReturns(ctx, buyer.Email)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, buyerOrder.ID, mine[0].OrderID)

	aliceReturns, err := svc.ListSellerReturns(ctx, alice.Email)
	require.NoError(t, err)
	require.Len(t, aliceReturns, 1)
	assert.Equal(t, aliceProduct.ID, aliceReturns[0].ProductID)
}
