package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	ExistsActiveEmail(ctx context.Context, email string) (bool, error)
}

type adminRepoImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepoImpl{
		db: db,
	}
}

func (r *adminRepoImpl) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error

	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminRepoImpl) ExistsActiveEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AdminEmail{}).
		Where("email = ?", email).
		Where("active = ?", true).
		Count(&count).Error

	return count > 0, err
}
