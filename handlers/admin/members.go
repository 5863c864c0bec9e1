package admin

import (
	"github.com/ddduartediego/sistema-coringas-sub000/database"
	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// GetMembers returns all members with pagination and name/email search
func GetMembers(c *fiber.Ctx) error {
	db := database.GetDB()

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	search := c.Query("search", "")

	svc := services.NewProfileService(db)
	members, total, err := svc.ListMembers(search, page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to fetch members",
		})
	}

	return c.JSON(fiber.Map{
		"integrantes": members,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

// GetMember returns a single member with its profile pendencies
func GetMember(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var member models.Profile
	if err := db.First(&member, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Integrante não encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"integrante": member,
		"pendencias": services.IncompleteProfileFields(member),
	})
}

// UpdateMember updates the admin-assignable fields of a member
func UpdateMember(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var member models.Profile
	if err := db.First(&member, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Integrante não encontrado",
		})
	}

	var input services.AdminUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	svc := services.NewProfileService(db)
	if err := svc.AdminUpdateMember(member.ID, input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Integrante atualizado",
	})
}

// ApproveMember flags a member as approved
func ApproveMember(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var member models.Profile
	if err := db.First(&member, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Integrante não encontrado",
		})
	}

	svc := services.NewProfileService(db)
	if err := svc.ApproveMember(member.ID); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Integrante aprovado",
	})
}
