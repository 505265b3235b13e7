package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type ReturnService interface {
	CreateReturn(ctx context.Context, req *dto.ReturnCreateRequest) (*model.Return, error)
	RequestReturn(ctx context.Context, req *dto.ReturnDetailRequest) (*model.Return, error)
	ListUserReturns(ctx context.Context, userEmail string) ([]*model.Return, error)
	ListSellerReturns(ctx context.Context, sellerEmail string) ([]*model.Return, error)
	ListAllReturns(ctx context.Context) ([]*model.Return, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Return, error)
}

type returnServiceImpl struct {
	returnRepo  repository.ReturnRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewReturnService(
	returnRepo repository.ReturnRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) ReturnService {
	return &returnServiceImpl{
		returnRepo:  returnRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateReturn is the simple path: the caller names only the order. The
// subject becomes the first returnable item in it, the type is always
// RETURN, and at most one return per order is allowed through here.
func (s *returnServiceImpl) CreateReturn(ctx context.Context, req *dto.ReturnCreateRequest) (*model.Return, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, translate(err)
	}

	if order.Status != model.OrderDelivered {
		return nil, fmt.Errorf("%w: order is not delivered", ErrInvalidState)
	}

	if order.User == nil || order.User.Email != req.UserEmail {
		return nil, fmt.Errorf("%w: order does not belong to %s", ErrForbidden, req.UserEmail)
	}

	existing, err := s.returnRepo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: a return already exists for this order", ErrInvalidState)
	}

	var subject *model.Product
	for _, item := range order.OrderItems {
		if item.Product != nil && item.Product.Returnable {
			subject = item.Product
			break
		}
	}
	if subject == nil {
		return nil, fmt.Errorf("%w: no returnable product in order", ErrInvalidState)
	}

	ret := &model.Return{
		Type:      model.ReturnTypeReturn,
		Status:    model.ReturnPending,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
		OrderID:   order.ID,
		ProductID: subject.ID,
	}
	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	return ret, nil
}

// RequestReturn is the detailed path: explicit product and type, eligibility
// decided by the per-product day window against the delivery timestamp.
// Unlike CreateReturn it checks neither requester identity nor whether a
// return already exists for the order.
func (s *returnServiceImpl) RequestReturn(ctx context.Context, req *dto.ReturnDetailRequest) (*model.Return, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, translate(err)
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, translate(err)
	}

	if order.Status != model.OrderDelivered {
		return nil, fmt.Errorf("%w: order is not delivered", ErrInvalidState)
	}
	if order.DeliveredAt == nil {
		return nil, fmt.Errorf("%w: order has no delivery date", ErrInvalidState)
	}

	// whole days since delivery, partial days do not count
	elapsedDays := int(time.Since(*order.DeliveredAt).Hours() / 24)

	switch req.Type {
	case model.ReturnTypeReturn:
		if !product.Returnable || elapsedDays > product.ReturnDays {
			return nil, fmt.Errorf("%w: product not eligible for return", ErrInvalidState)
		}
	case model.ReturnTypeReplacement:
		if !product.Replaceable || elapsedDays > product.ReplacementDays {
			return nil, fmt.Errorf("%w: product not eligible for replacement", ErrInvalidState)
		}
	default:
		return nil, fmt.Errorf("%w: type must be RETURN or REPLACEMENT", ErrValidation)
	}

	ret := &model.Return{
		Type:      req.Type,
		Status:    model.ReturnPending,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
		OrderID:   order.ID,
		ProductID: product.ID,
	}
	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	return ret, nil
}

func (s *returnServiceImpl) ListUserReturns(ctx context.Context, userEmail string) ([]*model.Return, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", ErrValidation)
	}
	return s.returnRepo.FindByUserEmail(ctx, userEmail)
}

func (s *returnServiceImpl) ListSellerReturns(ctx context.Context, sellerEmail string) ([]*model.Return, error) {
	if sellerEmail == "" {
		return nil, fmt.Errorf("%w: sellerEmail is required", ErrValidation)
	}
	return s.returnRepo.FindBySellerEmail(ctx, sellerEmail)
}

func (s *returnServiceImpl) ListAllReturns(ctx context.Context) ([]*model.Return, error) {
	return s.returnRepo.FindAll(ctx)
}

// UpdateStatus is a free-form overwrite; return cases are driven manually by
// admin and seller.
func (s *returnServiceImpl) UpdateStatus(ctx context.Context, id uint, status string) (*model.Return, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}

	if _, err := s.returnRepo.FindByID(ctx, id); err != nil {
		return nil, translate(err)
	}

	if err := s.returnRepo.Update(ctx, id, map[string]interface{}{
		"status": status,
	}); err != nil {
		return nil, err
	}

	return s.returnRepo.FindByID(ctx, id)
}
