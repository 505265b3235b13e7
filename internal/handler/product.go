package handler

import (
	"net/http"
	"strconv"

	"marketplace-backend/internal/auth"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	userType := c.QueryParam("userType")
	sellerEmail := c.QueryParam("sellerEmail")

	if userType == "seller" {
		if sellerEmail == "" {
			if email, err := identityEmail(c); err == nil {
				sellerEmail = email
			}
		}
		if sellerEmail != "" {
			products, err := h.productService.ListProductsBySeller(ctx, sellerEmail)
			if err != nil {
				return httpError(err)
			}
			return c.JSON(http.StatusOK, products)
		}
	}

	products, err := h.productService.ListProducts(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	product, err := h.productService.GetProduct(ctx, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListSellerProducts(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	products, err := h.productService.ListProductsBySeller(ctx, email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()

	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	products, err := h.productService.ListProductsByCategory(ctx, uint(categoryID))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProductJSON accepts a plain JSON body, no image.
func (h *ProductHandler) CreateProductJSON(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := h.productService.CreateProduct(ctx, &req, nil)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct accepts a multipart form with an optional productImage file.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := productRequestFromForm(c)
	if err != nil {
		return err
	}

	image, closeImage, err := formImage(c, "productImage")
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.productService.CreateProduct(ctx, req, image)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProductJSON(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := h.productService.UpdateProduct(ctx, id, &req, nil)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProductMultipart(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	req, err := productRequestFromForm(c)
	if err != nil {
		return err
	}

	image, closeImage, err := formImage(c, "productImage")
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.productService.UpdateProduct(ctx, id, req, image)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UploadProductImage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	image, closeImage, err := openImage(fh)
	if err != nil {
		return err
	}
	defer closeImage()

	url, err := h.productService.UploadProductImage(ctx, id, image)
	if err != nil {
		return httpError(err)
	}

	return c.String(http.StatusOK, url)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	// The caller's role comes from the token, never from the request.
	if claims := middleware.ClaimsFrom(c); claims != nil && claims.Role == auth.RoleAdmin {
		if err := h.productService.DeleteProduct(ctx, id); err != nil {
			return httpError(err)
		}
	} else {
		sellerEmail, err := identityEmail(c)
		if err != nil {
			return err
		}
		if err := h.productService.DeleteProductBySeller(ctx, id, sellerEmail); err != nil {
			return httpError(err)
		}
	}

	return c.String(http.StatusOK, "Product deleted successfully")
}

func productRequestFromForm(c echo.Context) (*dto.ProductRequest, error) {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	req := &dto.ProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Unit:        c.FormValue("unit"),
		SellerEmail: c.FormValue("sellerEmail"),
		CardColor:   c.FormValue("cardColor"),
	}

	if v := c.FormValue("categoryId"); v != "" {
		categoryID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid categoryId")
		}
		id := uint(categoryID)
		req.CategoryID = &id
	}

	req.Returnable, _ = strconv.ParseBool(c.FormValue("returnable"))
	req.Replaceable, _ = strconv.ParseBool(c.FormValue("replaceable"))
	if v := c.FormValue("returnDays"); v != "" {
		req.ReturnDays, _ = strconv.Atoi(v)
	}
	if v := c.FormValue("replacementDays"); v != "" {
		req.ReplacementDays, _ = strconv.Atoi(v)
	}

	return req, nil
}
