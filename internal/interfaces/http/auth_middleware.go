package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-finder/internal/application/dto"
	"github.com/jhoicas/stock-finder/pkg/jwt"
)

// LocalClientID key de Fiber Locals para el cliente autenticado.
const LocalClientID = "client_id"

// AuthMiddleware valida el Bearer Token JWT y guarda el ClientID en c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
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
		clientID, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClientID, clientID)
		return c.Next()
	}
}

// GetClientID devuelve el ClientID del contexto (después del middleware de auth).
func GetClientID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalClientID).(string)
	return s
}
