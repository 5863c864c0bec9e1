// models/team.go - Team and membership models
package models

import "time"

// Team status constants
type TeamStatus string

const (
	TeamStatusPendente  TeamStatus = "pendente"
	TeamStatusAtiva     TeamStatus = "ativa"
	TeamStatusRejeitada TeamStatus = "rejeitada"
)

// Membership status constants
type MembershipStatus string

const (
	MembershipStatusPendente MembershipStatus = "pendente"
	MembershipStatusAtivo    MembershipStatus = "ativo"
)

// Team represents a game team ("equipe")
type Team struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	GameID      uint         `json:"game_id" gorm:"not null;index"`
	Game        *Game        `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Nome        string       `json:"nome" gorm:"not null;size:50"`
	Status      TeamStatus   `json:"status" gorm:"not null;default:'pendente';index"`
	LiderID     uint         `json:"lider_id" gorm:"not null"`
	Lider       *Profile     `json:"lider,omitempty" gorm:"foreignKey:LiderID"`
	Integrantes []Membership `json:"integrantes,omitempty" gorm:"foreignKey:EquipeID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Membership links a member profile to a team. GameID is denormalized from
// the team so the one-team-per-member-per-game rule can live in a unique
// index instead of a read-then-insert check.
type Membership struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	EquipeID     uint             `json:"equipe_id" gorm:"not null;index"`
	Equipe       *Team            `json:"equipe,omitempty" gorm:"foreignKey:EquipeID"`
	GameID       uint             `json:"game_id" gorm:"not null;uniqueIndex:idx_integrante_game"`
	IntegranteID uint             `json:"integrante_id" gorm:"not null;index;uniqueIndex:idx_integrante_game"`
	Integrante   *Profile         `json:"integrante,omitempty" gorm:"foreignKey:IntegranteID"`
	Status       MembershipStatus `json:"status" gorm:"not null;default:'pendente';index"`
	IsOwner      bool             `json:"is_owner" gorm:"default:false"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Team) TableName() string {
	return "game_equipes"
}

func (Membership) TableName() string {
	return "equipe_integrantes"
}
