package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	FindByUsername(ctx context.Context, username string) (*model.Seller, error)
	FindByEmail(ctx context.Context, email string) (*model.Seller, error)
	FindByID(ctx context.Context, id uint) (*model.Seller, error)
	FindAll(ctx context.Context) ([]*model.Seller, error)
	Save(ctx context.Context, seller *model.Seller) error
	Delete(ctx context.Context, id uint) error
}

type sellerRepoImpl struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepoImpl{
		db: db,
	}
}

func (r *sellerRepoImpl) Create(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepoImpl) FindByUsername(ctx context.Context, username string) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepoImpl) FindByID(ctx context.Context, id uint) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepoImpl) FindAll(ctx context.Context) ([]*model.Seller, error) {
	var sellers []*model.Seller
	err := r.db.WithContext(ctx).Find(&sellers).Error
	if err != nil {
		return nil, err
	}

	return sellers, nil
}

func (r *sellerRepoImpl) Save(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

func (r *sellerRepoImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Seller{}, id).Error
}
