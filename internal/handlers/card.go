package handlers

import (
	"cardpay/internal/models"
	"cardpay/internal/services/card"
	"cardpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CardHandler exposes card management and transfer endpoints.
type CardHandler struct {
	cards card.Service
}

func NewCardHandler(cards card.Service) *CardHandler {
	return &CardHandler{cards: cards}
}

// GetMemberCards handles GET /members/:memberNumber/cards.
func (h *CardHandler) GetMemberCards(c *fiber.Ctx) error {
	memberNumber, err := c.ParamsInt("memberNumber")
	if err != nil {
		return response.BadRequest(c, "invalid member number")
	}

	cards, err := h.cards.ListCards(c.Context(), int64(memberNumber))
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "cards retrieved", cards)
}

// CreateCard handles POST /members/:memberNumber/cards.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	memberNumber, err := c.ParamsInt("memberNumber")
	if err != nil {
		return response.BadRequest(c, "invalid member number")
	}

	var input models.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.CardNumber == "" {
		return response.BadRequest(c, "card_number is required")
	}

	created, err := h.cards.CreateCard(c.Context(), int64(memberNumber), input)
	if err != nil {
		return domainError(c, err)
	}
	return response.Created(c, "card created", created)
}

// RemoveCard handles DELETE /members/:memberNumber/cards/:cardNumber.
func (h *CardHandler) RemoveCard(c *fiber.Ctx) error {
	memberNumber, err := c.ParamsInt("memberNumber")
	if err != nil {
		return response.BadRequest(c, "invalid member number")
	}
	cardNumber := c.Params("cardNumber")

	if err := h.cards.RemoveCard(c.Context(), int64(memberNumber), cardNumber); err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "card removed", nil)
}

// Transfer handles POST /members/:memberNumber/cards/transfer.
func (h *CardHandler) Transfer(c *fiber.Ctx) error {
	memberNumber, err := c.ParamsInt("memberNumber")
	if err != nil {
		return response.BadRequest(c, "invalid member number")
	}

	var details models.PaymentDetails
	if err := c.BodyParser(&details); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if details.Source == "" || details.Destination == "" {
		return response.BadRequest(c, "source and destination are required")
	}
	if !details.Amount.IsPositive() {
		return response.BadRequest(c, "amount must be positive")
	}

	resp, err := h.cards.Transfer(c.Context(), int64(memberNumber), details)
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "transfer processed", resp)
}
