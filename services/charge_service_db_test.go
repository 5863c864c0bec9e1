package services

import (
	"testing"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestCharge(t *testing.T, db *gorm.DB, valor decimal.Decimal) *models.Charge {
	t.Helper()

	charge := &models.Charge{
		Nome:          "Mensalidade",
		Valor:         valor,
		MesVencimento: 6,
		AnoVencimento: 2025,
	}
	require.NoError(t, db.Create(charge).Error)
	return charge
}

func TestRegisterPayment(t *testing.T) {
	db := newTestDB(t)
	service := NewChargeService(db)

	member := createTestProfile(t, db, "João")
	charge := createTestCharge(t, db, decimal.NewFromFloat(50))

	assignment := models.ChargeAssignment{
		CobrancaID:   charge.ID,
		IntegranteID: member.ID,
		Status:       models.ChargeStatusPendente,
	}
	require.NoError(t, db.Create(&assignment).Error)

	forma := models.ConfigPaymentMethod{Nome: "PIX", Ativo: true}
	require.NoError(t, db.Create(&forma).Error)

	paidAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("marks a pending assignment as paid", func(t *testing.T) {
		require.NoError(t, service.RegisterPayment(assignment.ID, paidAt, forma.ID))

		var got models.ChargeAssignment
		require.NoError(t, db.First(&got, assignment.ID).Error)
		assert.Equal(t, models.ChargeStatusPago, got.Status)
		require.NotNil(t, got.DataPagamento)
		require.NotNil(t, got.FormaPagamentoID)
		assert.Equal(t, forma.ID, *got.FormaPagamentoID)
	})

	t.Run("second submission is rejected", func(t *testing.T) {
		err := service.RegisterPayment(assignment.ID, paidAt.Add(time.Hour), forma.ID)
		assert.EqualError(t, err, "cobrança já registrada como paga")

		// the original payment data survives
		var got models.ChargeAssignment
		require.NoError(t, db.First(&got, assignment.ID).Error)
		assert.Equal(t, paidAt.Unix(), got.DataPagamento.Unix())
	})

	t.Run("unknown payment method is rejected", func(t *testing.T) {
		other := models.ChargeAssignment{
			CobrancaID:   charge.ID,
			IntegranteID: member.ID,
			Status:       models.ChargeStatusPendente,
		}
		require.NoError(t, db.Create(&other).Error)

		err := service.RegisterPayment(other.ID, paidAt, 9999)
		assert.EqualError(t, err, "forma de pagamento inválida")
	})
}

func TestReplaceInstallmentsDerivesParcelado(t *testing.T) {
	db := newTestDB(t)
	service := NewChargeService(db)

	charge := createTestCharge(t, db, decimal.NewFromInt(100))

	t.Run("single installment keeps the charge unparceled", func(t *testing.T) {
		parcelas := []models.Installment{
			{MesVencimento: 6, AnoVencimento: 2025, Valor: decimal.NewFromInt(100)},
		}
		require.NoError(t, service.ReplaceInstallments(charge.ID, parcelas))

		var got models.Charge
		require.NoError(t, db.First(&got, charge.ID).Error)
		assert.False(t, got.Parcelado)
		assert.Equal(t, 1, got.NumeroParcelas)
	})

	t.Run("multiple installments mark it parceled and renumber", func(t *testing.T) {
		parcelas := []models.Installment{
			{MesVencimento: 6, AnoVencimento: 2025, Valor: decimal.NewFromInt(60)},
			{MesVencimento: 7, AnoVencimento: 2025, Valor: decimal.NewFromInt(40)},
		}
		require.NoError(t, service.ReplaceInstallments(charge.ID, parcelas))

		var got models.Charge
		require.NoError(t, db.First(&got, charge.ID).Error)
		assert.True(t, got.Parcelado)
		assert.Equal(t, 2, got.NumeroParcelas)

		var stored []models.Installment
		require.NoError(t, db.Where("cobranca_id = ?", charge.ID).
			Order("numero ASC").Find(&stored).Error)
		require.Len(t, stored, 2)
		assert.Equal(t, 1, stored[0].Numero)
		assert.Equal(t, 2, stored[1].Numero)
	})
}
