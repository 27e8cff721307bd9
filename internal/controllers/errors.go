package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// mapDomainError translates service errors into HTTP errors. Unrecognized
// errors surface as 500 with a generic message.
func mapDomainError(err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrExpired):
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailExists):
		return fiber.NewError(fiber.StatusConflict, "An account with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrInvalidOperation):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrBackendUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "A backing service is unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong")
	}
}
