// handlers/auth.go - Member authentication
package handlers

import (
	"os"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/database"
	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	Profile   *models.Profile `json:"profile"`
	ExpiresAt int64           `json:"expires_at"`
}

// Login authenticates a member by email and password
// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "E-mail e senha são obrigatórios",
		})
	}

	db := database.GetDB()
	var profile models.Profile
	if err := db.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Credenciais inválidas",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Credenciais inválidas",
		})
	}

	token, expiresAt, err := generateToken(&profile)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate token",
		})
	}

	return c.JSON(LoginResponse{
		Token:     token,
		Profile:   &profile,
		ExpiresAt: expiresAt,
	})
}

// generateToken issues the HMAC JWT carrying the member claims
func generateToken(profile *models.Profile) (string, int64, error) {
	expiresAt := time.Now().Add(24 * time.Hour).Unix()

	claims := jwt.MapClaims{
		"profile_id":  profile.ID,
		"name":        profile.Name,
		"is_admin":    profile.IsAdmin,
		"is_aprovado": profile.IsAprovado,
		"exp":         expiresAt,
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt, nil
}
