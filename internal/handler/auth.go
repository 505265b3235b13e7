package handler

import (
	"net/http"

	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.authService.Signup(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SellerLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SellerLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.authService.SellerLogin(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.authService.AdminLogin(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyAdminEmail(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	ok, err := h.authService.VerifyAdminEmail(ctx, req.Email)
	if err != nil {
		return c.JSON(http.StatusOK, false)
	}

	return c.JSON(http.StatusOK, ok)
}
