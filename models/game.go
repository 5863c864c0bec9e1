// models/game.go
package models

import "time"

// Game status constants
type GameStatus string

const (
	GameStatusPendente  GameStatus = "pendente"
	GameStatusAtivo     GameStatus = "ativo"
	GameStatusInativo   GameStatus = "inativo"
	GameStatusEncerrado GameStatus = "encerrado"
)

// Game represents a GameRun event instance
type Game struct {
	ID                    uint       `json:"id" gorm:"primaryKey"`
	Titulo                string     `json:"titulo" gorm:"not null;size:100"`
	DescricaoCurta        string     `json:"descricao_curta" gorm:"size:255"`
	Descricao             string     `json:"descricao" gorm:"type:text"`
	QuantidadeIntegrantes int        `json:"quantidade_integrantes" gorm:"not null;default:4"`
	DataInicio            *time.Time `json:"data_inicio"`
	ImagemURL             string     `json:"imagem_url" gorm:"size:500"`
	Tipo                  string     `json:"tipo" gorm:"size:50"`
	Status                GameStatus `json:"status" gorm:"not null;default:'pendente';index"`
	Quests                []Quest    `json:"quests,omitempty" gorm:"foreignKey:GameID"`
	Equipes               []Team     `json:"equipes,omitempty" gorm:"foreignKey:GameID"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}
