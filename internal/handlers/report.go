package handlers

import (
	"cardpay/internal/services/report"
	"cardpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler exposes the transaction report endpoint.
type ReportHandler struct {
	reports report.Service
}

func NewReportHandler(reports report.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetReport handles
// GET /members/:memberNumber/cards/:cardNumber/transactions?from=&to=.
// from and to are inclusive YYYYMMDD integers.
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	memberNumber, err := c.ParamsInt("memberNumber")
	if err != nil {
		return response.BadRequest(c, "invalid member number")
	}
	cardNumber := c.Params("cardNumber")

	from := c.QueryInt("from")
	to := c.QueryInt("to")
	if from <= 0 || to <= 0 || from > to {
		return response.BadRequest(c, "from and to must be YYYYMMDD integers with from <= to")
	}

	grouped, err := h.reports.GetReport(c.Context(), int64(memberNumber), cardNumber, from, to)
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "report generated", grouped)
}
