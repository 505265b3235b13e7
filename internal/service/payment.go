package service

import (
	"context"
	"fmt"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type PaymentService interface {
	ListPayments(ctx context.Context, userEmail string) ([]*model.Payment, error)
	CreatePayment(ctx context.Context, userEmail string, req *dto.PaymentRequest) (*model.Payment, error)
	UpdatePayment(ctx context.Context, userEmail string, id uint, req *dto.PaymentRequest) (*model.Payment, error)
	DeletePayment(ctx context.Context, userEmail string, id uint) error
}

type paymentServiceImpl struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
	}
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context, userEmail string) ([]*model.Payment, error) {
	user, err := s.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, translate(err)
	}
	return s.paymentRepo.FindByUserID(ctx, user.ID)
}

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, userEmail string, req *dto.PaymentRequest) (*model.Payment, error) {
	if req.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, translate(err)
	}

	payment := &model.Payment{
		Type:       req.Type,
		LastFour:   req.LastFour,
		ExpiryDate: req.ExpiryDate,
		UpiID:      req.UpiID,
		UserID:     user.ID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, userEmail string, id uint, req *dto.PaymentRequest) (*model.Payment, error) {
	user, err := s.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, translate(err)
	}

	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if payment.UserID != user.ID {
		return nil, fmt.Errorf("%w: payment belongs to another user", ErrForbidden)
	}

	payment.Type = req.Type
	payment.LastFour = req.LastFour
	payment.ExpiryDate = req.ExpiryDate
	payment.UpiID = req.UpiID
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, userEmail string, id uint) error {
	user, err := s.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return translate(err)
	}

	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	if payment.UserID != user.ID {
		return fmt.Errorf("%w: payment belongs to another user", ErrForbidden)
	}

	return s.paymentRepo.Delete(ctx, id)
}
