package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UPIID is the marketplace collection account shown on the payment screen.
const UPIID = "marketplace1234567890-5@okaxis"

type CheckoutService interface {
	ProcessCheckout(ctx context.Context, userEmail string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// ProcessCheckout partitions the cart by the seller of each resolved product
// and creates one PENDING order per partition. Lines whose product no longer
// exists are dropped, not rejected. Items with no seller form their own
// partition and the resulting order carries no seller.
func (s *checkoutServiceImpl) ProcessCheckout(ctx context.Context, userEmail string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userEmail)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Partition surviving lines by seller. Key 0 collects products that
	// have no seller.
	itemsBySeller := make(map[uint][]dto.CheckoutItem)
	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve product %d: %w", item.ProductID, err)
		}

		var sellerID uint
		if product.SellerID != nil {
			sellerID = *product.SellerID
		}
		itemsBySeller[sellerID] = append(itemsBySeller[sellerID], item)
	}

	orderIDs := make([]uint, 0, len(itemsBySeller))
	for sellerID, sellerItems := range itemsBySeller {
		subtotal := decimal.Zero
		for _, item := range sellerItems {
			subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		order := &model.Order{
			Status:        model.OrderPending,
			Total:         subtotal,
			CreatedAt:     time.Now(),
			PaymentMethod: req.PaymentMethod,
			TransactionID: req.TransactionID,
			UserID:        user.ID,
		}
		if sellerID != 0 {
			id := sellerID
			order.SellerID = &id
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.orderRepo.Create(ctx, tx, order); err != nil {
				return fmt.Errorf("store order: %w", err)
			}

			items := make([]*model.OrderItem, len(sellerItems))
			for i, item := range sellerItems {
				items[i] = &model.OrderItem{
					OrderID:   order.ID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Price,
				}
			}
			if err := s.orderRepo.CreateItems(ctx, tx, items); err != nil {
				return fmt.Errorf("store order items: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		orderIDs = append(orderIDs, order.ID)
	}

	return &dto.CheckoutResponse{
		OrderIDs: orderIDs,
		Status:   "SUCCESS",
		Message:  "Orders placed successfully",
	}, nil
}
