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

type UserService interface {
	GetProfile(ctx context.Context, email string) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, email string, req *dto.UserProfileRequest) (*dto.UserProfileResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserProfileResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	BanUser(ctx context.Context, id uint, banned bool) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, email string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}

	return profileResponse(user), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, email string, req *dto.UserProfileRequest) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return profileResponse(user), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserProfileResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserProfileResponse, len(users))
	for i, user := range users {
		responses[i] = profileResponse(user)
	}

	return responses, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userServiceImpl) BanUser(ctx context.Context, id uint, banned bool) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	user.Banned = banned
	return s.userRepo.Save(ctx, user)
}

func profileResponse(user *model.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
		Banned:  user.Banned,
	}
}
