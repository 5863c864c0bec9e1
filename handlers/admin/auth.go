package admin

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
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	ExpiresAt int64  `json:"expires_at"`
}

// Login authenticates an administrator
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validate input
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "E-mail e senha são obrigatórios",
		})
	}

	// Find admin profile
	db := database.GetDB()
	var profile models.Profile
	if err := db.Where("email = ? AND is_admin = ?", req.Email, true).First(&profile).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Credenciais inválidas",
		})
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Credenciais inválidas",
		})
	}

	// Generate JWT token
	token, expiresAt, err := generateAdminToken(&profile)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(LoginResponse{
		Token:     token,
		Name:      profile.Name,
		ExpiresAt: expiresAt,
	})
}

// VerifyToken verifies an admin JWT token
func VerifyToken(c *fiber.Ctx) error {
	// Token is already validated by middleware
	return c.JSON(fiber.Map{
		"valid":      true,
		"profile_id": c.Locals("profileId"),
		"name":       c.Locals("name"),
		"is_admin":   c.Locals("isAdmin"),
	})
}

// Logout handles admin logout (client-side token removal)
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func generateAdminToken(profile *models.Profile) (string, int64, error) {
	expiresAt := time.Now().Add(8 * time.Hour).Unix()

	claims := jwt.MapClaims{
		"profile_id":  profile.ID,
		"name":        profile.Name,
		"is_admin":    true,
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
