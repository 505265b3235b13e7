package service

import (
	"context"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, req *dto.CategoryRequest, categoryImage, bannerImage *ImageUpload) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest, categoryImage, bannerImage *ImageUpload) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	images       *ImageStore
}

func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	images *ImageStore,
) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		images:       images,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryRequest, categoryImage, bannerImage *ImageUpload) (*model.Category, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}

	if err := s.applyImages(category, categoryImage, bannerImage); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest, categoryImage, bannerImage *ImageUpload) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	category.Name = req.Name
	category.Description = req.Description
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := s.applyImages(category, categoryImage, bannerImage); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryServiceImpl) applyImages(category *model.Category, categoryImage, bannerImage *ImageUpload) error {
	if categoryImage != nil {
		url, err := s.images.Save("categories", categoryImage)
		if err != nil {
			return err
		}
		category.CategoryImageURL = url
	}
	if bannerImage != nil {
		url, err := s.images.Save("categories", bannerImage)
		if err != nil {
			return err
		}
		category.BannerImageURL = url
	}
	return nil
}
