// handlers/profiles.go - Member profile HTTP Handlers
package handlers

import (
	"github.com/ddduartediego/sistema-coringas-sub000/middleware"
	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the caller's profile
// GET /api/profiles/me
func GetMyProfile(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	profile, err := profileService.GetProfile(profileID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": profile,
	})
}

// UpdateMyProfile applies the member-editable fields
// PUT /api/profiles/me
func UpdateMyProfile(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	profile, err := profileService.UpdateProfile(profileID, input)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Perfil atualizado com sucesso",
		"profile": profile,
	})
}

// GetMyPendencias lists which required profile fields are still missing
// GET /api/profiles/me/pendencias
func GetMyPendencias(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	profile, err := profileService.GetProfile(profileID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	missing := services.IncompleteProfileFields(*profile)

	return c.JSON(fiber.Map{
		"success":    true,
		"pendencias": missing,
		"completo":   len(missing) == 0,
	})
}
