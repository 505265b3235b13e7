package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) UPIDetails(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"upiId": service.UPIID})
}

func (h *CheckoutHandler) ProcessCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	userEmail := c.QueryParam("userEmail")

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.checkoutService.ProcessCheckout(ctx, userEmail, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
