// handlers/quests.go - Quest HTTP Handlers
package handlers

import (
	"strconv"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/middleware"
	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type questRequest struct {
	Numero     int        `json:"numero"`
	Titulo     string     `json:"titulo" validate:"required"`
	Descricao  string     `json:"descricao"`
	Pontos     int        `json:"pontos"`
	DataInicio *time.Time `json:"data_inicio"`
	DataFim    *time.Time `json:"data_fim"`
}

func (r questRequest) toInput() services.QuestInput {
	return services.QuestInput{
		Numero:     r.Numero,
		Titulo:     r.Titulo,
		Descricao:  r.Descricao,
		Pontos:     r.Pontos,
		DataInicio: r.DataInicio,
		DataFim:    r.DataFim,
	}
}

// GetGameQuests lists the quests of a game. Hidden quests only appear for
// admins.
// GET /api/games/:id/quests
func GetGameQuests(c *fiber.Ctx) error {
	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	quests, err := questService.GetGameQuests(uint(gameID), middleware.IsAdmin(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve quests",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quests":  quests,
		"count":   len(quests),
	})
}

// CreateQuest creates a quest and fans out assignments to existing teams (admin)
// POST /api/games/:id/quests
func CreateQuest(c *fiber.Ctx) error {
	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	var req questRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "O título da quest é obrigatório",
		})
	}

	quest, err := questService.CreateQuest(uint(gameID), req.toInput())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Quest criada com sucesso",
		"quest":   quest,
	})
}

// UpdateQuest edits a quest (admin)
// PUT /api/quests/:id
func UpdateQuest(c *fiber.Ctx) error {
	questID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid quest ID",
		})
	}

	var req questRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := questService.UpdateQuest(uint(questID), req.toInput()); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quest atualizada com sucesso",
	})
}

// DeleteQuest removes a quest and its assignments (admin)
// DELETE /api/quests/:id
func DeleteQuest(c *fiber.Ctx) error {
	questID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid quest ID",
		})
	}

	if err := questService.DeleteQuest(uint(questID)); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quest excluída com sucesso",
	})
}

// ToggleQuestVisibility flips the visibility flag (admin)
// PUT /api/quests/:id/visibility
func ToggleQuestVisibility(c *fiber.Ctx) error {
	questID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid quest ID",
		})
	}

	visivel, err := questService.ToggleVisibility(uint(questID))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"visivel": visivel,
	})
}

// UpdateQuestStatus sets the quest status (admin)
// PUT /api/quests/:id/status
func UpdateQuestStatus(c *fiber.Ctx) error {
	questID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid quest ID",
		})
	}

	var req struct {
		Status models.QuestStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := questService.UpdateStatus(uint(questID), req.Status); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status da quest atualizado",
	})
}

// AttachQuestPDF stores the uploaded PDF URL onto the quest (admin). The
// upload itself happens first through /api/upload; this is the second phase.
// PUT /api/quests/:id/pdf
func AttachQuestPDF(c *fiber.Ctx) error {
	questID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid quest ID",
		})
	}

	var req struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "URL do arquivo inválida",
		})
	}

	if err := questService.AttachPDF(uint(questID), req.URL); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Arquivo vinculado à quest",
	})
}

// GetTeamQuests lists the quest assignments of a team
// GET /api/teams/:id/quests
func GetTeamQuests(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	assignments, err := questService.GetTeamAssignments(uint(teamID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve team quests",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quests":  assignments,
		"count":   len(assignments),
	})
}
