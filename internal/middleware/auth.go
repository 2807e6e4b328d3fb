// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"log"
	"strings"

	"cardpay/internal/auth"
	"cardpay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates member bearer tokens and stores the claims
// in the request context under "claims".
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := auth.ParseMemberToken(strings.TrimPrefix(authHeader, "Bearer "), m.secret)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequireMember rejects requests whose token does not belong to the
// member addressed by the :memberNumber path parameter.
func RequireMember(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.MemberClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing claims"})
	}
	memberNumber, err := c.ParamsInt("memberNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid member number"})
	}
	if claims.MemberNumber != int64(memberNumber) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "token does not match member"})
	}
	return c.Next()
}
