// models/charge.go - Billing models ("cobranças")
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Charge assignment status constants. These keep the capitalized vocabulary
// the front end and reports were built around.
type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "Pendente"
	ChargeStatusPago     ChargeStatus = "Pago"
	ChargeStatusAtrasado ChargeStatus = "Atrasado"
)

// Aggregate status shown for a grouped charge
const ChargeStatusEmAtraso ChargeStatus = "Em Atraso"

// Charge represents one shared charge, fanned out to members via
// ChargeAssignment rows.
type Charge struct {
	ID             uint               `json:"id" gorm:"primaryKey"`
	Nome           string             `json:"nome" gorm:"not null;size:100;index"`
	Valor          decimal.Decimal    `json:"valor" gorm:"type:numeric(10,2);not null"`
	MesVencimento  int                `json:"mes_vencimento" gorm:"not null"`
	AnoVencimento  int                `json:"ano_vencimento" gorm:"not null"`
	Parcelado      bool               `json:"parcelado" gorm:"default:false"`
	NumeroParcelas int                `json:"numero_parcelas" gorm:"default:0"`
	Integrantes    []ChargeAssignment `json:"integrantes,omitempty" gorm:"foreignKey:CobrancaID"`
	Parcelas       []Installment      `json:"parcelas,omitempty" gorm:"foreignKey:CobrancaID"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ChargeAssignment is the per-member slice of a charge
type ChargeAssignment struct {
	ID               uint                 `json:"id" gorm:"primaryKey"`
	CobrancaID       uint                 `json:"cobranca_id" gorm:"not null;index"`
	Cobranca         *Charge              `json:"cobranca,omitempty" gorm:"foreignKey:CobrancaID"`
	IntegranteID     uint                 `json:"integrante_id" gorm:"not null;index"`
	Integrante       *Profile             `json:"integrante,omitempty" gorm:"foreignKey:IntegranteID"`
	Status           ChargeStatus         `json:"status" gorm:"not null;default:'Pendente';index"`
	DataPagamento    *time.Time           `json:"data_pagamento"`
	FormaPagamentoID *uint                `json:"forma_pagamento_id"`
	FormaPagamento   *ConfigPaymentMethod `json:"forma_pagamento,omitempty" gorm:"foreignKey:FormaPagamentoID"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// Installment is one "parcela" of a parceled charge. The sum of installment
// values must match the charge value within 0.01.
type Installment struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CobrancaID    uint            `json:"cobranca_id" gorm:"not null;index"`
	Numero        int             `json:"numero" gorm:"not null"`
	MesVencimento int             `json:"mes_vencimento" gorm:"not null"`
	AnoVencimento int             `json:"ano_vencimento" gorm:"not null"`
	Valor         decimal.Decimal `json:"valor" gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Charge) TableName() string {
	return "cobrancas"
}

func (ChargeAssignment) TableName() string {
	return "cobranca_integrantes"
}

func (Installment) TableName() string {
	return "cobranca_parcelas"
}
