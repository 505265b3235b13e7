package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindByID(ctx context.Context, id uint) (*model.Address, error)
	FindByUserID(ctx context.Context, userID uint) ([]*model.Address, error)
	Save(ctx context.Context, address *model.Address) error
	Delete(ctx context.Context, id uint) error
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepoImpl) FindByID(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&address).Error

	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressRepoImpl) FindByUserID(ctx context.Context, userID uint) ([]*model.Address, error) {
	var addresses []*model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&addresses).Error

	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepoImpl) Save(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *addressRepoImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Address{}, id).Error
}
