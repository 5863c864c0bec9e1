// handlers/games.go - Game HTTP Handlers
package handlers

import (
	"strconv"

	"github.com/ddduartediego/sistema-coringas-sub000/middleware"
	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// GetGames lists games. Admins also see pending/inactive games.
// GET /api/games
func GetGames(c *fiber.Ctx) error {
	games, err := gameService.ListGames(middleware.IsAdmin(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve games",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"games":   games,
		"count":   len(games),
	})
}

// GetGame retrieves a game by ID
// GET /api/games/:id
func GetGame(c *fiber.Ctx) error {
	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	game, err := gameService.GetGameByID(uint(gameID))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"game":    game,
	})
}

// CreateGame creates a new game (admin)
// POST /api/games
func CreateGame(c *fiber.Ctx) error {
	var input services.GameInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	game, err := gameService.CreateGame(input)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Game criado com sucesso",
		"game":    game,
	})
}

// UpdateGame edits a game (admin)
// PUT /api/games/:id
func UpdateGame(c *fiber.Ctx) error {
	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	var input services.GameInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := gameService.UpdateGame(uint(gameID), input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Game atualizado com sucesso",
	})
}

// UpdateGameStatus is the manual status transition button (admin)
// PUT /api/games/:id/status
func UpdateGameStatus(c *fiber.Ctx) error {
	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	var req struct {
		Status models.GameStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := gameService.UpdateStatus(uint(gameID), req.Status); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status do game atualizado",
	})
}
