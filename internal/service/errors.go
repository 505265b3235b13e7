package service

import (
	"errors"

	"gorm.io/gorm"
)

// Error kinds surfaced to handlers. Handlers map them onto HTTP statuses;
// anything not wrapping one of these bubbles up as a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("invalid request")
)

// translate turns gorm's record-not-found into the service-level kind so
// handlers never import gorm.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
