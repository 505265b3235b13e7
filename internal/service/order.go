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

type OrderService interface {
	ListUserOrders(ctx context.Context, userEmail string) ([]*model.Order, error)
	ListAllOrders(ctx context.Context) ([]*model.Order, error)
	ListSellerOrders(ctx context.Context, sellerEmail string) ([]*model.Order, error)
	Revenue(ctx context.Context) (*dto.RevenueResponse, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) (*model.Order, error)
	Cancel(ctx context.Context, orderID uint) (*model.Order, error)
	Reject(ctx context.Context, orderID uint, reason string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func (s *orderServiceImpl) ListUserOrders(ctx context.Context, userEmail string) ([]*model.Order, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userEmail)
		}
		return nil, err
	}

	return s.orderRepo.FindByUserID(ctx, user.ID)
}

func (s *orderServiceImpl) ListAllOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderServiceImpl) ListSellerOrders(ctx context.Context, sellerEmail string) ([]*model.Order, error) {
	if sellerEmail == "" {
		return nil, fmt.Errorf("%w: sellerEmail is required", ErrValidation)
	}

	return s.orderRepo.FindBySellerEmail(ctx, sellerEmail)
}

// Revenue is a reporting view over DELIVERED orders: the overall total plus a
// per-seller breakdown keyed "name (email)".
func (s *orderServiceImpl) Revenue(ctx context.Context) (*dto.RevenueResponse, error) {
	delivered, err := s.orderRepo.FindByStatus(ctx, model.OrderDelivered)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	sellerRevenue := make(map[string]dto.SellerRevenue)
	for _, order := range delivered {
		totalRevenue = totalRevenue.Add(order.Total)

		if order.Seller == nil {
			continue
		}
		key := order.Seller.Name + " (" + order.Seller.Email + ")"
		entry := sellerRevenue[key]
		entry.Revenue = entry.Revenue.Add(order.Total)
		entry.Orders++
		entry.SellerName = order.Seller.Name
		sellerRevenue[key] = entry
	}

	return &dto.RevenueResponse{
		TotalRevenue:         totalRevenue,
		DeliveredOrdersCount: len(delivered),
		SellerRevenue:        sellerRevenue,
		DeliveredOrders:      delivered,
	}, nil
}

// UpdateStatus overwrites the status without checking the current one. Only
// the transition to DELIVERED has a side effect: it stamps DeliveredAt.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID uint, status string) (*model.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}

	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, translate(err)
	}

	fields := map[string]interface{}{"status": status}
	if status == model.OrderDelivered {
		fields["delivered_at"] = time.Now()
	}

	if err := s.orderRepo.Update(ctx, orderID, fields); err != nil {
		return nil, translate(err)
	}

	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *orderServiceImpl) Cancel(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translate(err)
	}

	switch order.Status {
	case model.OrderShipped, model.OrderDelivered, model.OrderCancelled:
		return nil, fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidState, order.Status)
	}

	if err := s.orderRepo.Update(ctx, orderID, map[string]interface{}{
		"status": model.OrderCancelled,
	}); err != nil {
		return nil, translate(err)
	}

	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *orderServiceImpl) Reject(ctx context.Context, orderID uint, reason string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translate(err)
	}

	switch order.Status {
	case model.OrderShipped, model.OrderDelivered, model.OrderCancelled, model.OrderRejected:
		return nil, fmt.Errorf("%w: cannot reject order in status %s", ErrInvalidState, order.Status)
	}

	if err := s.orderRepo.Update(ctx, orderID, map[string]interface{}{
		"status":           model.OrderRejected,
		"rejection_reason": reason,
	}); err != nil {
		return nil, translate(err)
	}

	return s.orderRepo.FindByID(ctx, orderID)
}
