package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AddressHandler struct {
	addressService service.AddressService
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressService.ListAddresses(ctx, email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.CreateAddress(ctx, email, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.UpdateAddress(ctx, email, id, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, address)
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.addressService.DeleteAddress(ctx, email, id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}
