package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	req := categoryRequestFromForm(c)

	categoryImage, closeCategory, err := formImage(c, "categoryImage")
	if err != nil {
		return err
	}
	defer closeCategory()

	bannerImage, closeBanner, err := formImage(c, "bannerImage")
	if err != nil {
		return err
	}
	defer closeBanner()

	category, err := h.categoryService.CreateCategory(ctx, req, categoryImage, bannerImage)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	req := categoryRequestFromForm(c)

	categoryImage, closeCategory, err := formImage(c, "categoryImage")
	if err != nil {
		return err
	}
	defer closeCategory()

	bannerImage, closeBanner, err := formImage(c, "bannerImage")
	if err != nil {
		return err
	}
	defer closeBanner()

	category, err := h.categoryService.UpdateCategory(ctx, id, req, categoryImage, bannerImage)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.DeleteCategory(ctx, id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}

func categoryRequestFromForm(c echo.Context) *dto.CategoryRequest {
	return &dto.CategoryRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Color:       c.FormValue("color"),
	}
}
