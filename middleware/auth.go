// middleware/auth.go
package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token of an approved member and loads
// its claims into the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearerToken(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	isAprovado, _ := claims["is_aprovado"].(bool)
	if !isAprovado {
		return c.Status(403).JSON(fiber.Map{"error": "Cadastro ainda não aprovado pela administração"})
	}

	c.Locals("profileId", claims["profile_id"])
	c.Locals("name", claims["name"])
	c.Locals("isAdmin", claims["is_admin"])

	return c.Next()
}

// AdminAuthMiddleware additionally requires the is_admin claim.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearerToken(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	isAdmin, ok := claims["is_admin"].(bool)
	if !ok || !isAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin privileges required."})
	}

	c.Locals("profileId", claims["profile_id"])
	c.Locals("name", claims["name"])
	c.Locals("isAdmin", true)

	return c.Next()
}

// OptionalAuthMiddleware loads claims into the context when a valid bearer
// token is present but never rejects the request. Public listing routes use
// it so an authenticated admin sees pending and hidden records.
func OptionalAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearerToken(c)
	if err != nil {
		return c.Next()
	}

	c.Locals("profileId", claims["profile_id"])
	c.Locals("name", claims["name"])
	c.Locals("isAdmin", claims["is_admin"])

	return c.Next()
}

func parseBearerToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("Invalid authorization header format")
	}

	tokenString := parts[1]
	jwtSecret := os.Getenv("JWT_SECRET")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("Token expired")
	}

	return claims, nil
}

// GetProfileID extracts the authenticated member id from the context.
// JWT numeric claims decode as float64.
func GetProfileID(c *fiber.Ctx) (uint, error) {
	profileID := c.Locals("profileId")
	if profileID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := profileID.(float64); ok {
		return uint(id), nil
	}

	if id, ok := profileID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid profile ID format")
}

// IsAdmin reports whether the authenticated member carries the admin claim.
func IsAdmin(c *fiber.Ctx) bool {
	isAdmin := c.Locals("isAdmin")
	if isAdmin == nil {
		return false
	}

	if admin, ok := isAdmin.(bool); ok {
		return admin
	}

	return false
}
