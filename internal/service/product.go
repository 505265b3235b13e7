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

type ProductService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	ListProductsBySeller(ctx context.Context, sellerEmail string) ([]*model.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest, image *ImageUpload) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest, image *ImageUpload) (*model.Product, error)
	UploadProductImage(ctx context.Context, id uint, image *ImageUpload) (string, error)
	DeleteProduct(ctx context.Context, id uint) error
	DeleteProductBySeller(ctx context.Context, id uint, sellerEmail string) error
}

type productServiceImpl struct {
	db           *gorm.DB
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	sellerRepo   repository.SellerRepository
	orderRepo    repository.OrderRepository
	returnRepo   repository.ReturnRepository
	images       *ImageStore
}

func NewProductService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	sellerRepo repository.SellerRepository,
	orderRepo repository.OrderRepository,
	returnRepo repository.ReturnRepository,
	images *ImageStore,
) ProductService {
	return &productServiceImpl{
		db:           db,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sellerRepo:   sellerRepo,
		orderRepo:    orderRepo,
		returnRepo:   returnRepo,
		images:       images,
	}
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *productServiceImpl) ListProductsBySeller(ctx context.Context, sellerEmail string) ([]*model.Product, error) {
	if sellerEmail == "" {
		return nil, fmt.Errorf("%w: sellerEmail is required", ErrValidation)
	}
	return s.productRepo.FindBySellerEmail(ctx, sellerEmail)
}

func (s *productServiceImpl) ListProductsByCategory(ctx context.Context, categoryID uint) ([]*model.Product, error) {
	return s.productRepo.FindByCategoryID(ctx, categoryID)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest, image *ImageUpload) (*model.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	product := &model.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Unit:            req.Unit,
		Returnable:      req.Returnable,
		ReturnDays:      req.ReturnDays,
		Replaceable:     req.Replaceable,
		ReplacementDays: req.ReplacementDays,
		CardColor:       req.CardColor,
	}

	if err := s.resolveRelations(ctx, product, req); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Save("products", image)
		if err != nil {
			return nil, err
		}
		product.ProductImageURL = url
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest, image *ImageUpload) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Unit = req.Unit
	product.Returnable = req.Returnable
	product.ReturnDays = req.ReturnDays
	product.Replaceable = req.Replaceable
	product.ReplacementDays = req.ReplacementDays
	if req.CardColor != "" {
		product.CardColor = req.CardColor
	}

	if err := s.resolveRelations(ctx, product, req); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Save("products", image)
		if err != nil {
			return nil, err
		}
		product.ProductImageURL = url
	}

	// Save the row without touching the preloaded relations.
	product.Category = nil
	product.Seller = nil
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByID(ctx, id)
}

func (s *productServiceImpl) UploadProductImage(ctx context.Context, id uint, image *ImageUpload) (string, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return "", translate(err)
	}

	url, err := s.images.Save("products", image)
	if err != nil {
		return "", err
	}

	product.ProductImageURL = url
	product.Category = nil
	product.Seller = nil
	if err := s.productRepo.Save(ctx, product); err != nil {
		return "", err
	}

	return url, nil
}

// DeleteProduct removes a product and, first, every Return and OrderItem
// referencing it. Those relations do not cascade on their own.
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.returnRepo.DeleteByProductID(ctx, tx, id); err != nil {
			return fmt.Errorf("delete returns of product: %w", err)
		}
		if err := s.orderRepo.DeleteItemsByProductID(ctx, tx, id); err != nil {
			return fmt.Errorf("delete order items of product: %w", err)
		}
		return s.productRepo.Delete(ctx, tx, id)
	})
}

func (s *productServiceImpl) DeleteProductBySeller(ctx context.Context, id uint, sellerEmail string) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	if product.Seller == nil || product.Seller.Email != sellerEmail {
		return fmt.Errorf("%w: you can only delete your own products", ErrForbidden)
	}

	return s.DeleteProduct(ctx, id)
}

func (s *productServiceImpl) resolveRelations(ctx context.Context, product *model.Product, req *dto.ProductRequest) error {
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				product.CategoryID = nil
				return nil
			}
			return err
		}
		product.CategoryID = &category.ID
	}

	if req.SellerEmail != "" {
		seller, err := s.sellerRepo.FindByEmail(ctx, req.SellerEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: seller %s", ErrNotFound, req.SellerEmail)
			}
			return err
		}
		product.SellerID = &seller.ID
	}

	return nil
}
