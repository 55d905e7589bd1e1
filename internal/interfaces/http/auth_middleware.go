package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/enterprise-api/internal/application/dto"
	"github.com/jhoicas/enterprise-api/pkg/jwt"
)

// Locals keys para UserID y PartyID en Fiber.
const (
	LocalUserID  = "user_id"
	LocalPartyID = "party_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y PartyID a c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalPartyID, claims.PartyID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetPartyID devuelve el PartyID del contexto (después del middleware de auth).
func GetPartyID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPartyID).(string)
	return s
}
