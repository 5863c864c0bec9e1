// models/quest.go - Quest and per-team assignment models
package models

import "time"

// Quest status constants
type QuestStatus string

const (
	QuestStatusPendente   QuestStatus = "pendente"
	QuestStatusAtivo      QuestStatus = "ativo"
	QuestStatusInativo    QuestStatus = "inativo"
	QuestStatusFinalizada QuestStatus = "finalizada"
)

// Quest represents a mission inside a game
type Quest struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	GameID     uint        `json:"game_id" gorm:"not null;index"`
	Game       *Game       `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Numero     int         `json:"numero" gorm:"not null;default:1"`
	Titulo     string      `json:"titulo" gorm:"not null;size:100"`
	Descricao  string      `json:"descricao" gorm:"type:text"`
	Pontos     int         `json:"pontos" gorm:"default:0"`
	Status     QuestStatus `json:"status" gorm:"not null;default:'pendente';index"`
	Visivel    bool        `json:"visivel" gorm:"default:false"`
	DataInicio *time.Time  `json:"data_inicio"`
	DataFim    *time.Time  `json:"data_fim"`
	ArquivoPDF string      `json:"arquivo_pdf" gorm:"size:500"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// QuestAssignment links a quest to one team of the game.
// One row is fanned out per existing team when the quest is created.
type QuestAssignment struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	EquipeID  uint        `json:"equipe_id" gorm:"not null;index"`
	Equipe    *Team       `json:"equipe,omitempty" gorm:"foreignKey:EquipeID"`
	QuestID   uint        `json:"quest_id" gorm:"not null;index"`
	Quest     *Quest      `json:"quest,omitempty" gorm:"foreignKey:QuestID"`
	Status    QuestStatus `json:"status" gorm:"not null;default:'pendente'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Quest) TableName() string {
	return "quests"
}

func (QuestAssignment) TableName() string {
	return "equipe_quests"
}
