package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	resp, err := h.userService.GetProfile(ctx, email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := identityEmail(c)
	if err != nil {
		return err
	}

	var req dto.UserProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.userService.UpdateProfile(ctx, email, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
