package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListUserOrders(ctx, c.QueryParam("userEmail"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListAllOrders(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Revenue(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.orderService.Revenue(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListSellerOrders(ctx, c.QueryParam("sellerEmail"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.orderService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.Cancel(ctx, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.OrderRejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.orderService.Reject(ctx, id, req.Reason)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}
