// handlers/config.go - Config table ("config_*") HTTP Handlers
package handlers

import (
	"github.com/ddduartediego/sistema-coringas-sub000/database"
	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// GetGameTypes lists active game types
// GET /api/config/tipos-game
func GetGameTypes(c *fiber.Ctx) error {
	db := database.GetDB()

	var tipos []models.ConfigGameType
	if err := db.Where("ativo = ?", true).Order("nome ASC").Find(&tipos).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve game types",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"tipos":   tipos,
	})
}

// CreateGameType adds a game type (admin)
// POST /api/config/tipos-game
func CreateGameType(c *fiber.Ctx) error {
	db := database.GetDB()

	var tipo models.ConfigGameType
	if err := c.BodyParser(&tipo); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if tipo.Nome == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "O nome do tipo é obrigatório",
		})
	}

	tipo.ID = 0
	tipo.Ativo = true
	if err := db.Create(&tipo).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"tipo":    tipo,
	})
}

// GetPaymentMethods lists active payment methods
// GET /api/config/formas-pagamento
func GetPaymentMethods(c *fiber.Ctx) error {
	db := database.GetDB()

	var formas []models.ConfigPaymentMethod
	if err := db.Where("ativo = ?", true).Order("nome ASC").Find(&formas).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve payment methods",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"formas":  formas,
	})
}

// CreatePaymentMethod adds a payment method (admin)
// POST /api/config/formas-pagamento
func CreatePaymentMethod(c *fiber.Ctx) error {
	db := database.GetDB()

	var forma models.ConfigPaymentMethod
	if err := c.BodyParser(&forma); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if forma.Nome == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "O nome da forma de pagamento é obrigatório",
		})
	}

	forma.ID = 0
	forma.Ativo = true
	if err := db.Create(&forma).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"forma":   forma,
	})
}

// GetStatuses lists admin-assignable member statuses
// GET /api/config/status
func GetStatuses(c *fiber.Ctx) error {
	db := database.GetDB()

	var statuses []models.ConfigStatus
	if err := db.Where("ativo = ?", true).Order("nome ASC").Find(&statuses).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve statuses",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  statuses,
	})
}

// CreateStatus adds a member status label (admin)
// POST /api/config/status
func CreateStatus(c *fiber.Ctx) error {
	db := database.GetDB()

	var status models.ConfigStatus
	if err := c.BodyParser(&status); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if status.Nome == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "O nome do status é obrigatório",
		})
	}

	status.ID = 0
	status.Ativo = true
	if err := db.Create(&status).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"status":  status,
	})
}

// GetRoles lists admin-assignable member roles
// GET /api/config/funcoes
func GetRoles(c *fiber.Ctx) error {
	db := database.GetDB()

	var funcoes []models.ConfigRole
	if err := db.Where("ativo = ?", true).Order("nome ASC").Find(&funcoes).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve roles",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"funcoes": funcoes,
	})
}

// CreateRole adds a member role label (admin)
// POST /api/config/funcoes
func CreateRole(c *fiber.Ctx) error {
	db := database.GetDB()

	var funcao models.ConfigRole
	if err := c.BodyParser(&funcao); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if funcao.Nome == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "O nome da função é obrigatório",
		})
	}

	funcao.ID = 0
	funcao.Ativo = true
	if err := db.Create(&funcao).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"funcao":  funcao,
	})
}
