package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
)

func TestIsOverdue(t *testing.T) {
	// frozen clock: June 2025
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  models.ChargeStatus
		mes     int
		ano     int
		overdue bool
	}{
		{"due month past, same year", models.ChargeStatusPendente, 5, 2025, true},
		{"due in current month", models.ChargeStatusPendente, 6, 2025, false},
		{"due in future month", models.ChargeStatusPendente, 7, 2025, false},
		{"due in previous year", models.ChargeStatusPendente, 12, 2024, true},
		{"due in future year", models.ChargeStatusPendente, 1, 2026, false},
		{"paid is never overdue", models.ChargeStatusPago, 1, 2020, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, IsOverdue(tt.status, tt.mes, tt.ano, now))
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	pastDue := &models.Charge{MesVencimento: 4, AnoVencimento: 2025}
	current := &models.Charge{MesVencimento: 6, AnoVencimento: 2025}

	t.Run("pending past due is promoted to Atrasado", func(t *testing.T) {
		a := models.ChargeAssignment{Status: models.ChargeStatusPendente, Cobranca: pastDue}
		assert.Equal(t, models.ChargeStatusAtrasado, EffectiveStatus(a, now))
	})

	t.Run("pending within due month stays Pendente", func(t *testing.T) {
		a := models.ChargeAssignment{Status: models.ChargeStatusPendente, Cobranca: current}
		assert.Equal(t, models.ChargeStatusPendente, EffectiveStatus(a, now))
	})

	t.Run("paid stays Pago regardless of due date", func(t *testing.T) {
		a := models.ChargeAssignment{Status: models.ChargeStatusPago, Cobranca: pastDue}
		assert.Equal(t, models.ChargeStatusPago, EffectiveStatus(a, now))
	})

	t.Run("missing charge relation leaves status untouched", func(t *testing.T) {
		a := models.ChargeAssignment{Status: models.ChargeStatusPendente}
		assert.Equal(t, models.ChargeStatusPendente, EffectiveStatus(a, now))
	})
}

func TestGroupStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.ChargeStatus
		expected models.ChargeStatus
	}{
		{
			"any overdue wins",
			[]models.ChargeStatus{models.ChargeStatusPago, models.ChargeStatusAtrasado, models.ChargeStatusPendente},
			models.ChargeStatusEmAtraso,
		},
		{
			"pending beats paid",
			[]models.ChargeStatus{models.ChargeStatusPago, models.ChargeStatusPendente},
			models.ChargeStatusPendente,
		},
		{
			"all paid means paid",
			[]models.ChargeStatus{models.ChargeStatusPago, models.ChargeStatusPago},
			models.ChargeStatusPago,
		},
		{
			"single overdue member",
			[]models.ChargeStatus{models.ChargeStatusAtrasado},
			models.ChargeStatusEmAtraso,
		},
		{
			"empty group counts as paid",
			[]models.ChargeStatus{},
			models.ChargeStatusPago,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GroupStatus(tt.statuses))
		})
	}
}

func TestGroupCharges(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	mensalidade := &models.Charge{
		ID:            1,
		Nome:          "Mensalidade Junho",
		Valor:         decimal.NewFromFloat(50),
		MesVencimento: 6,
		AnoVencimento: 2025,
	}
	uniforme := &models.Charge{
		ID:            2,
		Nome:          "Uniforme",
		Valor:         decimal.NewFromFloat(120),
		MesVencimento: 3,
		AnoVencimento: 2025,
	}

	assignments := []models.ChargeAssignment{
		{ID: 10, Cobranca: mensalidade, IntegranteID: 1, Status: models.ChargeStatusPago},
		{ID: 11, Cobranca: mensalidade, IntegranteID: 2, Status: models.ChargeStatusPendente},
		{ID: 12, Cobranca: uniforme, IntegranteID: 1, Status: models.ChargeStatusPendente},
		{ID: 13, Cobranca: mensalidade, IntegranteID: 3, Status: models.ChargeStatusPago},
	}

	groups := GroupCharges(assignments, now)

	assert.Len(t, groups, 2)

	// first-appearance order preserved
	assert.Equal(t, "Mensalidade Junho", groups[0].Nome)
	assert.Equal(t, "Uniforme", groups[1].Nome)

	assert.Len(t, groups[0].Integrantes, 3)
	assert.Equal(t, models.ChargeStatusPendente, groups[0].Status)
	assert.True(t, groups[0].ValorTotal.Equal(decimal.NewFromFloat(150)))

	// uniforme is past due, so the pending member is promoted
	assert.Len(t, groups[1].Integrantes, 1)
	assert.Equal(t, models.ChargeStatusAtrasado, groups[1].Integrantes[0].Status)
	assert.Equal(t, models.ChargeStatusEmAtraso, groups[1].Status)
	assert.True(t, groups[1].ValorTotal.Equal(decimal.NewFromFloat(120)))
}

func TestGroupChargesSkipsMissingCharge(t *testing.T) {
	now := time.Now()
	groups := GroupCharges([]models.ChargeAssignment{{ID: 1, Status: models.ChargeStatusPendente}}, now)
	assert.Empty(t, groups)
}

func TestValidateInstallments(t *testing.T) {
	total := decimal.NewFromFloat(100)

	parcela := func(mes int, valor float64) models.Installment {
		return models.Installment{MesVencimento: mes, AnoVencimento: 2025, Valor: decimal.NewFromFloat(valor)}
	}

	t.Run("exact sum is accepted", func(t *testing.T) {
		err := ValidateInstallments([]models.Installment{
			parcela(1, 40), parcela(2, 40), parcela(3, 20),
		}, total)
		assert.NoError(t, err)
	})

	t.Run("sum within tolerance is accepted", func(t *testing.T) {
		err := ValidateInstallments([]models.Installment{
			parcela(1, 33.33), parcela(2, 33.33), parcela(3, 33.33),
		}, total)
		assert.NoError(t, err)
	})

	t.Run("sum off by more than tolerance is rejected", func(t *testing.T) {
		err := ValidateInstallments([]models.Installment{
			parcela(1, 40), parcela(2, 40), parcela(3, 19),
		}, total)
		assert.Error(t, err)
	})

	t.Run("empty installment list is rejected", func(t *testing.T) {
		err := ValidateInstallments(nil, total)
		assert.Error(t, err)
	})

	t.Run("negative installment value is rejected", func(t *testing.T) {
		err := ValidateInstallments([]models.Installment{
			parcela(1, 110), parcela(2, -10),
		}, total)
		assert.Error(t, err)
	})

	t.Run("invalid due month is rejected", func(t *testing.T) {
		err := ValidateInstallments([]models.Installment{
			parcela(13, 100),
		}, total)
		assert.Error(t, err)
	})
}
