package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
	FindBySellerEmail(ctx context.Context, sellerEmail string) ([]*model.Order, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Order, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteItemsByProductID(ctx context.Context, tx *gorm.DB, productID uint) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Seller").
		Preload("OrderItems").
		Preload("OrderItems.Product")
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.withRelations(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByUserID(ctx context.Context, userID uint) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.withRelations(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.withRelations(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindBySellerEmail(ctx context.Context, sellerEmail string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.withRelations(r.db.WithContext(ctx)).
		Joins("JOIN sellers ON sellers.id = orders.seller_id").
		Where("sellers.email = ?", sellerEmail).
		Order("orders.created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByStatus(ctx context.Context, status string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.withRelations(r.db.WithContext(ctx)).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// Update applies the given fields. Existence is the caller's concern: MySQL
// reports zero affected rows for a no-op update, so RowsAffected cannot
// distinguish a missing row from an unchanged one.
func (r *orderRepoImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *orderRepoImpl) DeleteItemsByProductID(ctx context.Context, tx *gorm.DB, productID uint) error {
	return tx.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.OrderItem{}).Error
}
