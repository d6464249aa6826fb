// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"capacita_backend/internals/configs"
)

// AuthMiddleware valida o Bearer token e injeta usuario_id nos locals
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Falha ao fazer parse do token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Validação de exp:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		usuarioID, err := extractUsuarioID(claims)
		if err != nil {
			log.Println("[ERROR] usuario_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("usuario_id", usuarioID.String())

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return "", errors.New("Authorization header ausente")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Authorization header inválido")
	}
	return strings.TrimSpace(parts[1]), nil
}

// validateTokenExpiry aceita um leeway pequeno para diferença de relógio
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("claim exp ausente")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("claim exp inválida")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expirado")
	}
	return nil
}

func extractUsuarioID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["usuario_id"]
	if !ok {
		// compat: tokens antigos usavam "sub"
		raw, ok = claims["sub"]
		if !ok {
			return uuid.Nil, errors.New("claim usuario_id ausente")
		}
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("claim usuario_id não é string")
	}
	return uuid.Parse(s)
}
