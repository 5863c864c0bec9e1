// handlers/charges.go - Billing ("cobranças") HTTP Handlers
package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/middleware"
	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type chargeRequest struct {
	Nome           string          `json:"nome" validate:"required"`
	Valor          decimal.Decimal `json:"valor"`
	MesVencimento  int             `json:"mes_vencimento" validate:"min=1,max=12"`
	AnoVencimento  int             `json:"ano_vencimento" validate:"min=2000"`
	Parcelado      bool            `json:"parcelado"`
	NumeroParcelas int             `json:"numero_parcelas"`
	IntegranteIDs  []uint          `json:"integrante_ids" validate:"min=1"`
}

// CreateCharge creates a charge and fans it out to the selected members (admin)
// POST /api/cobrancas
func CreateCharge(c *fiber.Ctx) error {
	var req chargeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Dados da cobrança inválidos",
		})
	}

	charge, err := chargeService.CreateCharge(services.ChargeInput{
		Nome:           req.Nome,
		Valor:          req.Valor,
		MesVencimento:  req.MesVencimento,
		AnoVencimento:  req.AnoVencimento,
		Parcelado:      req.Parcelado,
		NumeroParcelas: req.NumeroParcelas,
		IntegranteIDs:  req.IntegranteIDs,
	})
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"message":  "Cobrança criada com sucesso",
		"cobranca": charge,
	})
}

// GetCharges lists charges grouped by name with aggregate status (admin)
// GET /api/cobrancas
func GetCharges(c *fiber.Ctx) error {
	groups, err := chargeService.ListGrouped(time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve charges",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"cobrancas": groups,
		"count":     len(groups),
	})
}

// GetMyCharges lists the caller's charges with effective statuses
// GET /api/cobrancas/me
func GetMyCharges(c *fiber.Ctx) error {
	profileID, err := middleware.GetProfileID(c)
	if err != nil {
		return err
	}

	assignments, err := chargeService.ListMemberCharges(profileID, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve charges",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"cobrancas": assignments,
		"count":     len(assignments),
	})
}

// GetMemberCharges lists a member's charges with effective statuses (admin)
// GET /api/admin/integrantes/:id/cobrancas
func GetMemberCharges(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid member ID",
		})
	}

	assignments, err := chargeService.ListMemberCharges(uint(memberID), time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve charges",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"cobrancas": assignments,
		"count":     len(assignments),
	})
}

// RegisterPayment marks a member's charge as paid (admin)
// PUT /api/cobrancas/pagamentos/:id
func RegisterPayment(c *fiber.Ctx) error {
	assignmentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid charge assignment ID",
		})
	}

	var req struct {
		DataPagamento    time.Time `json:"data_pagamento"`
		FormaPagamentoID uint      `json:"forma_pagamento_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.DataPagamento.IsZero() {
		req.DataPagamento = time.Now()
	}

	if err := chargeService.RegisterPayment(uint(assignmentID), req.DataPagamento, req.FormaPagamentoID); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Pagamento registrado",
	})
}

// DeleteChargeAssignment removes a member's charge; the charge itself is
// removed along with its installments when no member references it anymore
// (admin)
// DELETE /api/cobrancas/pagamentos/:id
func DeleteChargeAssignment(c *fiber.Ctx) error {
	assignmentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid charge assignment ID",
		})
	}

	if err := chargeService.DeleteAssignment(uint(assignmentID)); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cobrança do integrante excluída",
	})
}

// ReplaceInstallments swaps the installments of a charge (admin)
// PUT /api/cobrancas/:id/parcelas
func ReplaceInstallments(c *fiber.Ctx) error {
	chargeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid charge ID",
		})
	}

	var req struct {
		Parcelas []models.Installment `json:"parcelas"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := chargeService.ReplaceInstallments(uint(chargeID), req.Parcelas); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Parcelas atualizadas",
	})
}

// NotifyCharge sends the WhatsApp reminder for a member's charge (admin).
// Delivery is fire-and-forget: a gateway failure is logged and reported but
// nothing is retried.
// POST /api/cobrancas/pagamentos/:id/notificar
func NotifyCharge(c *fiber.Ctx) error {
	assignmentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid charge assignment ID",
		})
	}

	assignment, err := chargeService.GetAssignment(uint(assignmentID))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Cobrança do integrante não encontrada",
		})
	}

	if assignment.Cobranca == nil || assignment.Integrante == nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Cobrança sem dados completos",
		})
	}

	err = whatsService.SendChargeNotification(
		assignment.Integrante.Telefone,
		assignment.Cobranca.Nome,
		assignment.Cobranca.Valor,
		assignment.Cobranca.MesVencimento,
		assignment.Cobranca.AnoVencimento,
	)
	if err != nil {
		log.Printf("❌ WhatsApp notification failed for assignment %d: %v", assignment.ID, err)
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"error":   "Falha ao enviar a notificação",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notificação enviada",
	})
}
