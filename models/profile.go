// models/profile.go
package models

import "time"

// Profile represents a member ("integrante") of the GameRun community.
// Most personal fields are optional at signup and tracked by the
// completeness workflow.
type Profile struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   string  `gorm:"uniqueIndex;size:64" json:"user_id"`
	Name     string  `gorm:"not null;size:100" json:"name"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`

	// Personal data
	Apelido        string     `json:"apelido" gorm:"size:50"`
	CPF            string     `json:"cpf" gorm:"size:14"`
	RG             string     `json:"rg" gorm:"size:20"`
	DataNascimento *time.Time `json:"data_nascimento"`
	Genero         string     `json:"genero" gorm:"size:20"`
	Telefone       string     `json:"telefone" gorm:"size:20"`
	Profissao      string     `json:"profissao" gorm:"size:100"`
	EstadoCivil    string     `json:"estado_civil" gorm:"size:30"`
	TamanhoCamisa  string     `json:"tamanho_camisa" gorm:"size:5"`
	Instagram      string     `json:"instagram" gorm:"size:100"`
	AvatarURL      string     `json:"avatar_url" gorm:"size:500"`

	// Address
	CEP    string `json:"cep" gorm:"size:9"`
	Rua    string `json:"rua" gorm:"size:150"`
	Numero string `json:"numero" gorm:"size:10"`
	Bairro string `json:"bairro" gorm:"size:100"`
	Cidade string `json:"cidade" gorm:"size:100"`
	Estado string `json:"estado" gorm:"size:2"`

	// Health
	TipoSanguineo  string     `json:"tipo_sanguineo" gorm:"size:3"`
	IsDoadorSangue bool       `json:"is_doador_sangue" gorm:"default:false"`
	UltimaDoacao   *time.Time `json:"ultima_doacao"`

	// Emergency contact
	ContatoEmergenciaNome     string `json:"contato_emergencia_nome" gorm:"size:100"`
	ContatoEmergenciaTelefone string `json:"contato_emergencia_telefone" gorm:"size:20"`

	// Administration
	Status     string `json:"status" gorm:"size:50"`
	Funcao     string `json:"funcao" gorm:"size:50"`
	IsAdmin    bool   `json:"is_admin" gorm:"default:false"`
	IsAprovado bool   `json:"is_aprovado" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
