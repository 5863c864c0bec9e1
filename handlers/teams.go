// handlers/teams.go - Team and membership HTTP Handlers
package handlers

import (
	"strconv"

	"github.com/ddduartediego/sistema-coringas-sub000/middleware"
	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// GetGameTeams lists the teams of a game
// GET /api/games/:id/teams
func GetGameTeams(c *fiber.Ctx) error {
	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	teams, err := teamService.GetGameTeams(uint(gameID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve teams",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"equipes": teams,
		"count":   len(teams),
	})
}

// CreateTeam creates a team with the caller as owner
// POST /api/games/:id/teams
func CreateTeam(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	gameID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid game ID",
		})
	}

	var req struct {
		Nome string `json:"nome"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	team, err := teamService.CreateTeam(uint(gameID), req.Nome, profileID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Equipe criada com sucesso",
		"equipe":  team,
	})
}

// GetTeam retrieves a team with its members
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	team, err := teamService.GetTeamByID(uint(teamID))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Equipe não encontrada",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"equipe":  team,
	})
}

// JoinTeam requests to join a team; the request stays pending until the
// leader approves it
// POST /api/teams/:id/join
func JoinTeam(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	member, err := teamService.RequestJoin(uint(teamID), profileID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"message":    "Solicitação de inscrição enviada",
		"integrante": member,
	})
}

// ApproveMembership activates a pending join request (team leader or admin)
// PUT /api/memberships/:id/approve
func ApproveMembership(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	membershipID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid membership ID",
		})
	}

	if err := teamService.ApproveMembership(uint(membershipID), profileID, middleware.IsAdmin(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inscrição aprovada",
	})
}

// RejectMembership removes a pending join request (team leader or admin)
// PUT /api/memberships/:id/reject
func RejectMembership(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	membershipID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid membership ID",
		})
	}

	if err := teamService.RejectMembership(uint(membershipID), profileID, middleware.IsAdmin(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inscrição rejeitada",
	})
}

// LeaveTeam removes the caller from the team
// POST /api/teams/:id/leave
func LeaveTeam(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	if err := teamService.LeaveTeam(uint(teamID), profileID); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Você saiu da equipe",
	})
}

// RemoveMember removes a member from the team (leader or admin)
// DELETE /api/teams/:id/members/:memberId
func RemoveMember(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	memberID, err := strconv.ParseUint(c.Params("memberId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid member ID",
		})
	}

	if err := teamService.RemoveMember(uint(teamID), profileID, uint(memberID), middleware.IsAdmin(c)); err != nil {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Integrante removido da equipe",
	})
}

// GetTeamMembers lists the members of a team
// GET /api/teams/:id/members
func GetTeamMembers(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	members, err := teamService.GetTeamMembers(uint(teamID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve team members",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"integrantes": members,
		"count":       len(members),
	})
}

// UpdateTeamStatus is the admin approval of a team (ativa/rejeitada)
// PUT /api/teams/:id/status
func UpdateTeamStatus(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	var req struct {
		Status models.TeamStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := teamService.UpdateTeamStatus(uint(teamID), req.Status); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status da equipe atualizado",
	})
}
