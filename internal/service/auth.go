package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-backend/internal/auth"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	SellerLogin(ctx context.Context, req *dto.SellerLoginRequest) (*dto.SellerResponse, error)
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminResponse, error)
	VerifyAdminEmail(ctx context.Context, email string) (bool, error)
}

type authServiceImpl struct {
	userRepo   repository.UserRepository
	sellerRepo repository.SellerRepository
	adminRepo  repository.AdminRepository
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sellerRepo repository.SellerRepository,
	adminRepo repository.AdminRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		sellerRepo: sellerRepo,
		adminRepo:  adminRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.userResponse(user)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return nil, err
	}

	if user.Banned {
		return nil, fmt.Errorf("%w: account is banned", ErrForbidden)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	return s.userResponse(user)
}

func (s *authServiceImpl) SellerLogin(ctx context.Context, req *dto.SellerLoginRequest) (*dto.SellerResponse, error) {
	seller, err := s.sellerRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	token, err := auth.GenerateToken(s.jwtSecret, seller.Email, auth.RoleSeller, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.SellerResponse{
		ID:       seller.ID,
		Username: seller.Username,
		Name:     seller.Name,
		Email:    seller.Email,
		Token:    token,
	}, nil
}

func (s *authServiceImpl) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	token, err := auth.GenerateToken(s.jwtSecret, admin.Email, auth.RoleAdmin, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Email:    admin.Email,
		Token:    token,
	}, nil
}

func (s *authServiceImpl) VerifyAdminEmail(ctx context.Context, email string) (bool, error) {
	return s.adminRepo.ExistsActiveEmail(ctx, email)
}

func (s *authServiceImpl) userResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(s.jwtSecret, user.Email, auth.RoleUser, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
		Role:  auth.RoleUser,
	}, nil
}
