package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type ReturnRepository interface {
	Create(ctx context.Context, ret *model.Return) error
	FindByID(ctx context.Context, id uint) (*model.Return, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]*model.Return, error)
	FindAll(ctx context.Context) ([]*model.Return, error)
	FindByUserEmail(ctx context.Context, userEmail string) ([]*model.Return, error)
	FindBySellerEmail(ctx context.Context, sellerEmail string) ([]*model.Return, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteByProductID(ctx context.Context, tx *gorm.DB, productID uint) error
}

type returnRepoImpl struct {
	db *gorm.DB
}

func NewReturnRepository(db *gorm.DB) ReturnRepository {
	return &returnRepoImpl{
		db: db,
	}
}

func (r *returnRepoImpl) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Order").
		Preload("Order.User").
		Preload("Product").
		Preload("Product.Seller")
}

func (r *returnRepoImpl) Create(ctx context.Context, ret *model.Return) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *returnRepoImpl) FindByID(ctx context.Context, id uint) (*model.Return, error) {
	var ret model.Return
	err := r.withRelations(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&ret).Error

	if err != nil {
		return nil, err
	}

	return &ret, nil
}

func (r *returnRepoImpl) FindByOrderID(ctx context.Context, orderID uint) ([]*model.Return, error) {
	var returns []*model.Return
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&returns).Error

	if err != nil {
		return nil, err
	}

	return returns, nil
}

func (r *returnRepoImpl) FindAll(ctx context.Context) ([]*model.Return, error) {
	var returns []*model.Return
	err := r.withRelations(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&returns).Error

	if err != nil {
		return nil, err
	}

	return returns, nil
}

func (r *returnRepoImpl) FindByUserEmail(ctx context.Context, userEmail string) ([]*model.Return, error) {
	var returns []*model.Return
	err := r.withRelations(r.db.WithContext(ctx)).
		Joins("JOIN orders ON orders.id = returns.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.email = ?", userEmail).
		Order("returns.created_at DESC").
		Find(&returns).Error

	if err != nil {
		return nil, err
	}

	return returns, nil
}

func (r *returnRepoImpl) FindBySellerEmail(ctx context.Context, sellerEmail string) ([]*model.Return, error) {
	var returns []*model.Return
	err := r.withRelations(r.db.WithContext(ctx)).
		Joins("JOIN products ON products.id = returns.product_id").
		Joins("JOIN sellers ON sellers.id = products.seller_id").
		Where("sellers.email = ?", sellerEmail).
		Order("returns.created_at DESC").
		Find(&returns).Error

	if err != nil {
		return nil, err
	}

	return returns, nil
}

// Update applies the given fields. Existence is the caller's concern: MySQL
// reports zero affected rows for a no-op update, so RowsAffected cannot
// distinguish a missing row from an unchanged one.
func (r *returnRepoImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Return{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *returnRepoImpl) DeleteByProductID(ctx context.Context, tx *gorm.DB, productID uint) error {
	return tx.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.Return{}).Error
}
