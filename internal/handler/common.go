package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// httpError maps service error kinds onto HTTP statuses. Unknown errors are
// returned as-is so the recover middleware logs them as 500s.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidState), errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// identityEmail is the authenticated caller's email from the bearer token.
func identityEmail(c echo.Context) (string, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return claims.Email, nil
}

// formImage opens an optional multipart file field. A missing field is not
// an error; it just means no image was uploaded.
func formImage(c echo.Context, field string) (*service.ImageUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	return openImage(fh)
}

func openImage(fh *multipart.FileHeader) (*service.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	return &service.ImageUpload{Filename: fh.Filename, Reader: f}, func() { f.Close() }, nil
}
