// services/charge_service.go - Billing ("cobranças") business logic
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ChargeService struct {
	db *gorm.DB
}

func NewChargeService(db *gorm.DB) *ChargeService {
	return &ChargeService{db: db}
}

// installmentTolerance is how far the installment sum may drift from the
// charge total (rounding of hand-typed values).
var installmentTolerance = decimal.NewFromFloat(0.01)

// ================== PURE BILLING RULES ==================

// IsOverdue applies the calendar rule: an unpaid charge is overdue once the
// current month is past the due month. No grace period.
func IsOverdue(status models.ChargeStatus, mesVencimento, anoVencimento int, now time.Time) bool {
	if status == models.ChargeStatusPago {
		return false
	}
	if anoVencimento < now.Year() {
		return true
	}
	return anoVencimento == now.Year() && mesVencimento < int(now.Month())
}

// EffectiveStatus resolves the display status of one assignment, promoting
// Pendente to Atrasado when past due.
func EffectiveStatus(a models.ChargeAssignment, now time.Time) models.ChargeStatus {
	if a.Status != models.ChargeStatusPago && a.Cobranca != nil &&
		IsOverdue(a.Status, a.Cobranca.MesVencimento, a.Cobranca.AnoVencimento, now) {
		return models.ChargeStatusAtrasado
	}
	return a.Status
}

// GroupStatus aggregates member statuses: overdue beats pending beats paid.
func GroupStatus(statuses []models.ChargeStatus) models.ChargeStatus {
	anyPending := false
	for _, status := range statuses {
		switch status {
		case models.ChargeStatusAtrasado, models.ChargeStatusEmAtraso:
			return models.ChargeStatusEmAtraso
		case models.ChargeStatusPendente:
			anyPending = true
		}
	}
	if anyPending {
		return models.ChargeStatusPendente
	}
	return models.ChargeStatusPago
}

// ChargeGroup is the display shape of a charge across its members
type ChargeGroup struct {
	Nome          string                    `json:"nome"`
	Valor         decimal.Decimal           `json:"valor"`
	MesVencimento int                       `json:"mes_vencimento"`
	AnoVencimento int                       `json:"ano_vencimento"`
	Status        models.ChargeStatus       `json:"status"`
	ValorTotal    decimal.Decimal           `json:"valor_total"`
	Integrantes   []models.ChargeAssignment `json:"integrantes"`
}

// GroupCharges partitions member assignments by charge name and computes the
// aggregate status of each group. Iteration order of first appearance is
// preserved.
func GroupCharges(assignments []models.ChargeAssignment, now time.Time) []ChargeGroup {
	groups := make([]ChargeGroup, 0)
	index := make(map[string]int)

	for _, a := range assignments {
		if a.Cobranca == nil {
			continue
		}

		i, ok := index[a.Cobranca.Nome]
		if !ok {
			i = len(groups)
			index[a.Cobranca.Nome] = i
			groups = append(groups, ChargeGroup{
				Nome:          a.Cobranca.Nome,
				Valor:         a.Cobranca.Valor,
				MesVencimento: a.Cobranca.MesVencimento,
				AnoVencimento: a.Cobranca.AnoVencimento,
				ValorTotal:    decimal.Zero,
			})
		}

		a.Status = EffectiveStatus(a, now)
		groups[i].Integrantes = append(groups[i].Integrantes, a)
		groups[i].ValorTotal = groups[i].ValorTotal.Add(a.Cobranca.Valor)
	}

	for i := range groups {
		statuses := make([]models.ChargeStatus, 0, len(groups[i].Integrantes))
		for _, a := range groups[i].Integrantes {
			statuses = append(statuses, a.Status)
		}
		groups[i].Status = GroupStatus(statuses)
	}

	return groups
}

// ValidateInstallments checks that the installment values add up to the
// charge total within the tolerance.
func ValidateInstallments(parcelas []models.Installment, total decimal.Decimal) error {
	if len(parcelas) == 0 {
		return errors.New("informe ao menos uma parcela")
	}

	sum := decimal.Zero
	for _, p := range parcelas {
		if p.Valor.IsNegative() {
			return errors.New("o valor da parcela não pode ser negativo")
		}
		if p.MesVencimento < 1 || p.MesVencimento > 12 {
			return errors.New("mês de vencimento da parcela inválido")
		}
		sum = sum.Add(p.Valor)
	}

	if sum.Sub(total).Abs().GreaterThan(installmentTolerance) {
		return errors.New("a soma das parcelas não corresponde ao valor da cobrança")
	}
	return nil
}

// ================== CHARGE OPERATIONS ==================

// ChargeInput carries the fields for creating a charge
type ChargeInput struct {
	Nome           string
	Valor          decimal.Decimal
	MesVencimento  int
	AnoVencimento  int
	Parcelado      bool
	NumeroParcelas int
	IntegranteIDs  []uint
}

// CreateCharge creates one shared charge and fans out a pending assignment
// per selected member, committed as a single transaction.
func (s *ChargeService) CreateCharge(input ChargeInput) (*models.Charge, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, errors.New("o nome da cobrança é obrigatório")
	}
	if !input.Valor.IsPositive() {
		return nil, errors.New("o valor da cobrança deve ser maior que zero")
	}
	if input.MesVencimento < 1 || input.MesVencimento > 12 {
		return nil, errors.New("mês de vencimento inválido")
	}
	if len(input.IntegranteIDs) == 0 {
		return nil, errors.New("selecione ao menos um integrante")
	}

	charge := &models.Charge{
		Nome:           strings.TrimSpace(input.Nome),
		Valor:          input.Valor,
		MesVencimento:  input.MesVencimento,
		AnoVencimento:  input.AnoVencimento,
		Parcelado:      input.Parcelado,
		NumeroParcelas: input.NumeroParcelas,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(charge).Error; err != nil {
			return err
		}

		assignments := make([]models.ChargeAssignment, 0, len(input.IntegranteIDs))
		for _, integranteID := range input.IntegranteIDs {
			assignments = append(assignments, models.ChargeAssignment{
				CobrancaID:   charge.ID,
				IntegranteID: integranteID,
				Status:       models.ChargeStatusPendente,
			})
		}

		return tx.Create(&assignments).Error
	})

	if err != nil {
		return nil, err
	}

	return charge, nil
}

// ListGrouped returns all charges grouped for display
func (s *ChargeService) ListGrouped(now time.Time) ([]ChargeGroup, error) {
	var assignments []models.ChargeAssignment

	err := s.db.Preload("Cobranca").
		Preload("Integrante").
		Preload("FormaPagamento").
		Joins("JOIN cobrancas ON cobrancas.id = cobranca_integrantes.cobranca_id").
		Order("cobrancas.ano_vencimento DESC, cobrancas.mes_vencimento DESC, cobrancas.nome ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	return GroupCharges(assignments, now), nil
}

// ListMemberCharges returns a member's assignments with effective statuses
func (s *ChargeService) ListMemberCharges(integranteID uint, now time.Time) ([]models.ChargeAssignment, error) {
	var assignments []models.ChargeAssignment

	err := s.db.Where("integrante_id = ?", integranteID).
		Preload("Cobranca").
		Preload("Cobranca.Parcelas").
		Preload("FormaPagamento").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	for i := range assignments {
		assignments[i].Status = EffectiveStatus(assignments[i], now)
	}

	return assignments, nil
}

// RegisterPayment marks an assignment as paid. Paying an already-paid
// assignment is rejected instead of silently overwriting the payment data.
func (s *ChargeService) RegisterPayment(assignmentID uint, dataPagamento time.Time, formaPagamentoID uint) error {
	var assignment models.ChargeAssignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		return errors.New("cobrança do integrante não encontrada")
	}

	var forma models.ConfigPaymentMethod
	if err := s.db.First(&forma, formaPagamentoID).Error; err != nil {
		return errors.New("forma de pagamento inválida")
	}

	// The paid guard lives in the WHERE clause; a concurrent second
	// submission matches zero rows instead of overwriting the payment.
	result := s.db.Model(&models.ChargeAssignment{}).
		Where("id = ? AND status <> ?", assignmentID, models.ChargeStatusPago).
		Updates(map[string]interface{}{
			"status":             models.ChargeStatusPago,
			"data_pagamento":     dataPagamento,
			"forma_pagamento_id": formaPagamentoID,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("cobrança já registrada como paga")
	}

	return nil
}

// DeleteAssignment removes a member's assignment. When it is the last one
// referencing the charge, the charge and its installments are removed too,
// all inside one transaction.
func (s *ChargeService) DeleteAssignment(assignmentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.ChargeAssignment
		if err := tx.First(&assignment, assignmentID).Error; err != nil {
			return errors.New("cobrança do integrante não encontrada")
		}

		if err := tx.Delete(&assignment).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.ChargeAssignment{}).
			Where("cobranca_id = ?", assignment.CobrancaID).
			Count(&remaining).Error; err != nil {
			return err
		}

		if remaining > 0 {
			return nil
		}

		if err := tx.Where("cobranca_id = ?", assignment.CobrancaID).
			Delete(&models.Installment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Charge{}, assignment.CobrancaID).Error
	})
}

// ReplaceInstallments swaps the installment set of a charge after validating
// the sum against the charge value.
func (s *ChargeService) ReplaceInstallments(chargeID uint, parcelas []models.Installment) error {
	var charge models.Charge
	if err := s.db.First(&charge, chargeID).Error; err != nil {
		return errors.New("cobrança não encontrada")
	}

	if err := ValidateInstallments(parcelas, charge.Valor); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cobranca_id = ?", chargeID).
			Delete(&models.Installment{}).Error; err != nil {
			return err
		}

		for i := range parcelas {
			parcelas[i].ID = 0
			parcelas[i].CobrancaID = chargeID
			parcelas[i].Numero = i + 1
		}

		if err := tx.Create(&parcelas).Error; err != nil {
			return err
		}

		return tx.Model(&charge).Updates(map[string]interface{}{
			"parcelado":       len(parcelas) > 1,
			"numero_parcelas": len(parcelas),
			"updated_at":      time.Now(),
		}).Error
	})
}

// GetAssignment loads an assignment with charge and member preloaded
func (s *ChargeService) GetAssignment(assignmentID uint) (*models.ChargeAssignment, error) {
	var assignment models.ChargeAssignment
	err := s.db.Preload("Cobranca").
		Preload("Integrante").
		First(&assignment, assignmentID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
