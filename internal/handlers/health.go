package handlers

import (
	"cardpay/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service and database health.
func HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := repositories.DB.DB()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
	}
	if err := sqlDB.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
