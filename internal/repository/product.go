package repository

import (
	"context"

	"marketplace-backend/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindAll(ctx context.Context) ([]*model.Product, error)
	FindBySellerEmail(ctx context.Context, sellerEmail string) ([]*model.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]*model.Product, error)
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Seller").
		Where("id = ?", id).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindAll(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Seller").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindBySellerEmail(ctx context.Context, sellerEmail string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Seller").
		Joins("JOIN sellers ON sellers.id = products.seller_id").
		Where("sellers.email = ?", sellerEmail).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByCategoryID(ctx context.Context, categoryID uint) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Seller").
		Where("category_id = ?", categoryID).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepoImpl) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Product{}, id).Error
}
