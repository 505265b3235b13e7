package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	payments, err := h.paymentService.ListPayments(ctx, email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	payment, err := h.paymentService.CreatePayment(ctx, email, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	payment, err := h.paymentService.UpdatePayment(ctx, email, id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.paymentService.DeletePayment(ctx, email, id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}
