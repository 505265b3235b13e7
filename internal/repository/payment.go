package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id uint) (*model.Payment, error)
	FindByUserID(ctx context.Context, userID uint) ([]*model.Payment, error)
	Save(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, id uint) error
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByID(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&payment).Error

	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) FindByUserID(ctx context.Context, userID uint) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepoImpl) Save(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepoImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Payment{}, id).Error
}
