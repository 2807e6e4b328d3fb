package handlers

import (
	"errors"

	"cardpay/internal/services/card"
	"cardpay/internal/services/report"
	"cardpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// domainError maps service errors to HTTP responses.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, card.ErrMemberNotFound),
		errors.Is(err, card.ErrNoCards),
		errors.Is(err, card.ErrCardNotFound),
		errors.Is(err, report.ErrNoTransactions):
		return response.NotFound(c, err.Error())
	case errors.Is(err, card.ErrCardExists):
		return response.Conflict(c, err.Error())
	case errors.Is(err, card.ErrGatewayFault):
		return response.Error(c, fiber.StatusBadGateway, err.Error())
	default:
		return response.ServerError(c, "internal error")
	}
}
