package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	userService   service.UserService
	sellerService service.SellerAdminService
}

func NewAdminHandler(userService service.UserService, sellerService service.SellerAdminService) *AdminHandler {
	return &AdminHandler{
		userService:   userService,
		sellerService: sellerService,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *AdminHandler) BanUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.BanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.userService.BanUser(ctx, id, req.Banned); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *AdminHandler) ListSellers(c echo.Context) error {
	ctx := c.Request().Context()

	sellers, err := h.sellerService.ListSellers(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, sellers)
}

func (h *AdminHandler) AddSeller(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.sellerService.AddSeller(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateSeller(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.SellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.sellerService.UpdateSeller(ctx, id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteSeller(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.sellerService.DeleteSeller(ctx, id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}
