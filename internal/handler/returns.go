package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type ReturnHandler struct {
	returnService service.ReturnService
}

func NewReturnHandler(returnService service.ReturnService) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
	}
}

func (h *ReturnHandler) CreateReturn(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ReturnCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	ret, err := h.returnService.CreateReturn(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, ret)
}

func (h *ReturnHandler) RequestReturn(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ReturnDetailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	ret, err := h.returnService.RequestReturn(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, ret)
}

func (h *ReturnHandler) ListUserReturns(c echo.Context) error {
	ctx := c.Request().Context()

	returns, err := h.returnService.ListUserReturns(ctx, c.QueryParam("userEmail"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, returns)
}

func (h *ReturnHandler) ListSellerReturns(c echo.Context) error {
	ctx := c.Request().Context()

	returns, err := h.returnService.ListSellerReturns(ctx, c.QueryParam("sellerEmail"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, returns)
}

func (h *ReturnHandler) ListAllReturns(c echo.Context) error {
	ctx := c.Request().Context()

	returns, err := h.returnService.ListAllReturns(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, returns)
}

func (h *ReturnHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.ReturnStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	ret, err := h.returnService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, ret)
}
