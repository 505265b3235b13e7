package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

type AddressService interface {
	ListAddresses(ctx context.Context, userEmail string) ([]*model.Address, error)
	CreateAddress(ctx context.Context, userEmail string, req *dto.AddressRequest) (*model.Address, error)
	UpdateAddress(ctx context.Context, userEmail string, id uint, req *dto.AddressRequest) (*model.Address, error)
	DeleteAddress(ctx context.Context, userEmail string, id uint) error
}

type addressServiceImpl struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
}

func NewAddressService(
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
) AddressService {
	return &addressServiceImpl{
		addressRepo: addressRepo,
		userRepo:    userRepo,
	}
}

func (s *addressServiceImpl) ListAddresses(ctx context.Context, userEmail string) ([]*model.Address, error) {
	user, err := s.findUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return s.addressRepo.FindByUserID(ctx, user.ID)
}

func (s *addressServiceImpl) CreateAddress(ctx context.Context, userEmail string, req *dto.AddressRequest) (*model.Address, error) {
	if req.Type == "" || req.FullAddress == "" {
		return nil, fmt.Errorf("%w: type and fullAddress are required", ErrValidation)
	}

	user, err := s.findUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	address := &model.Address{
		Type:        req.Type,
		FullAddress: req.FullAddress,
		UserID:      user.ID,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *addressServiceImpl) UpdateAddress(ctx context.Context, userEmail string, id uint, req *dto.AddressRequest) (*model.Address, error) {
	user, err := s.findUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if address.UserID != user.ID {
		return nil, fmt.Errorf("%w: address belongs to another user", ErrForbidden)
	}

	address.Type = req.Type
	address.FullAddress = req.FullAddress
	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *addressServiceImpl) DeleteAddress(ctx context.Context, userEmail string, id uint) error {
	user, err := s.findUser(ctx, userEmail)
	if err != nil {
		return err
	}

	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	if address.UserID != user.ID {
		return fmt.Errorf("%w: address belongs to another user", ErrForbidden)
	}

	return s.addressRepo.Delete(ctx, id)
}

func (s *addressServiceImpl) findUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}
	return user, nil
}
