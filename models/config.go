// models/config.go - Admin-managed lookup tables (config_*)
package models

import "time"

// ConfigGameType is a selectable game type (config_tipo_game)
type ConfigGameType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null;size:50;uniqueIndex"`
	Descricao string    `json:"descricao" gorm:"size:255"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfigPaymentMethod is a selectable payment method (config_forma_pagamento)
type ConfigPaymentMethod struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null;size:50;uniqueIndex"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfigStatus is an admin-assignable member status label (config_status)
type ConfigStatus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null;size:50;uniqueIndex"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfigRole is an admin-assignable member role label (config_funcao)
type ConfigRole struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null;size:50;uniqueIndex"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

func (ConfigGameType) TableName() string {
	return "config_tipo_game"
}

func (ConfigPaymentMethod) TableName() string {
	return "config_forma_pagamento"
}

func (ConfigStatus) TableName() string {
	return "config_status"
}

func (ConfigRole) TableName() string {
	return "config_funcao"
}
