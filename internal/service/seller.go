package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SellerAdminService is the admin-side management of seller accounts.
type SellerAdminService interface {
	ListSellers(ctx context.Context) ([]*dto.SellerResponse, error)
	AddSeller(ctx context.Context, req *dto.SellerRequest) (*dto.SellerResponse, error)
	UpdateSeller(ctx context.Context, id uint, req *dto.SellerRequest) (*dto.SellerResponse, error)
	DeleteSeller(ctx context.Context, id uint) error
}

type sellerAdminServiceImpl struct {
	sellerRepo repository.SellerRepository
}

func NewSellerAdminService(sellerRepo repository.SellerRepository) SellerAdminService {
	return &sellerAdminServiceImpl{
		sellerRepo: sellerRepo,
	}
}

func (s *sellerAdminServiceImpl) ListSellers(ctx context.Context) ([]*dto.SellerResponse, error) {
	sellers, err := s.sellerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SellerResponse, len(sellers))
	for i, seller := range sellers {
		responses[i] = sellerResponse(seller)
	}

	return responses, nil
}

func (s *sellerAdminServiceImpl) AddSeller(ctx context.Context, req *dto.SellerRequest) (*dto.SellerResponse, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: username, password and email are required", ErrValidation)
	}

	if _, err := s.sellerRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username already exists", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.sellerRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already exists", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	seller := &model.Seller{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	return sellerResponse(seller), nil
}

func (s *sellerAdminServiceImpl) UpdateSeller(ctx context.Context, id uint, req *dto.SellerRequest) (*dto.SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	seller.Name = req.Name
	seller.Username = req.Username
	seller.Email = req.Email

	// password only changes when the request carries one
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		seller.Password = string(hash)
	}

	if err := s.sellerRepo.Save(ctx, seller); err != nil {
		return nil, err
	}

	return sellerResponse(seller), nil
}

func (s *sellerAdminServiceImpl) DeleteSeller(ctx context.Context, id uint) error {
	if _, err := s.sellerRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.sellerRepo.Delete(ctx, id)
}

func sellerResponse(seller *model.Seller) *dto.SellerResponse {
	return &dto.SellerResponse{
		ID:       seller.ID,
		Username: seller.Username,
		Name:     seller.Name,
		Email:    seller.Email,
	}
}
