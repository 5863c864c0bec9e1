// services/profile_service.go - Member profile business logic
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// IncompleteProfileFields returns the human-readable labels of the required
// fields still missing from a profile. Última Doação only counts when the
// member is a blood donor.
func IncompleteProfileFields(p models.Profile) []string {
	missing := make([]string, 0)

	checks := []struct {
		label string
		empty bool
	}{
		{"Nome", strings.TrimSpace(p.Name) == ""},
		{"E-mail", p.Email == nil || strings.TrimSpace(*p.Email) == ""},
		{"Apelido", strings.TrimSpace(p.Apelido) == ""},
		{"CPF", strings.TrimSpace(p.CPF) == ""},
		{"RG", strings.TrimSpace(p.RG) == ""},
		{"Data de Nascimento", p.DataNascimento == nil},
		{"Gênero", strings.TrimSpace(p.Genero) == ""},
		{"Telefone", strings.TrimSpace(p.Telefone) == ""},
		{"Profissão", strings.TrimSpace(p.Profissao) == ""},
		{"Estado Civil", strings.TrimSpace(p.EstadoCivil) == ""},
		{"Tamanho da Camisa", strings.TrimSpace(p.TamanhoCamisa) == ""},
		{"CEP", strings.TrimSpace(p.CEP) == ""},
		{"Rua", strings.TrimSpace(p.Rua) == ""},
		{"Número", strings.TrimSpace(p.Numero) == ""},
		{"Bairro", strings.TrimSpace(p.Bairro) == ""},
		{"Cidade", strings.TrimSpace(p.Cidade) == ""},
		{"Estado", strings.TrimSpace(p.Estado) == ""},
		{"Tipo Sanguíneo", strings.TrimSpace(p.TipoSanguineo) == ""},
		{"Contato de Emergência", strings.TrimSpace(p.ContatoEmergenciaNome) == ""},
		{"Telefone de Emergência", strings.TrimSpace(p.ContatoEmergenciaTelefone) == ""},
		{"Última Doação", p.IsDoadorSangue && p.UltimaDoacao == nil},
	}

	for _, check := range checks {
		if check.empty {
			missing = append(missing, check.label)
		}
	}

	return missing
}

// GetProfile loads a member profile
func (s *ProfileService) GetProfile(profileID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, profileID).Error; err != nil {
		return nil, errors.New("integrante não encontrado")
	}
	return &profile, nil
}

// ProfileInput carries the member-editable profile fields
type ProfileInput struct {
	Name                      string     `json:"name"`
	Apelido                   string     `json:"apelido"`
	CPF                       string     `json:"cpf"`
	RG                        string     `json:"rg"`
	DataNascimento            *time.Time `json:"data_nascimento"`
	Genero                    string     `json:"genero"`
	Telefone                  string     `json:"telefone"`
	Profissao                 string     `json:"profissao"`
	EstadoCivil               string     `json:"estado_civil"`
	TamanhoCamisa             string     `json:"tamanho_camisa"`
	Instagram                 string     `json:"instagram"`
	CEP                       string     `json:"cep"`
	Rua                       string     `json:"rua"`
	Numero                    string     `json:"numero"`
	Bairro                    string     `json:"bairro"`
	Cidade                    string     `json:"cidade"`
	Estado                    string     `json:"estado"`
	TipoSanguineo             string     `json:"tipo_sanguineo"`
	IsDoadorSangue            bool       `json:"is_doador_sangue"`
	UltimaDoacao              *time.Time `json:"ultima_doacao"`
	ContatoEmergenciaNome     string     `json:"contato_emergencia_nome"`
	ContatoEmergenciaTelefone string     `json:"contato_emergencia_telefone"`
	AvatarURL                 string     `json:"avatar_url"`
}

// UpdateProfile applies the member-editable fields
func (s *ProfileService) UpdateProfile(profileID uint, input ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, profileID).Error; err != nil {
		return nil, errors.New("integrante não encontrado")
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("o nome é obrigatório")
	}

	profile.Name = strings.TrimSpace(input.Name)
	profile.Apelido = input.Apelido
	profile.CPF = input.CPF
	profile.RG = input.RG
	profile.DataNascimento = input.DataNascimento
	profile.Genero = input.Genero
	profile.Telefone = input.Telefone
	profile.Profissao = input.Profissao
	profile.EstadoCivil = input.EstadoCivil
	profile.TamanhoCamisa = input.TamanhoCamisa
	profile.Instagram = input.Instagram
	profile.CEP = input.CEP
	profile.Rua = input.Rua
	profile.Numero = input.Numero
	profile.Bairro = input.Bairro
	profile.Cidade = input.Cidade
	profile.Estado = input.Estado
	profile.TipoSanguineo = input.TipoSanguineo
	profile.IsDoadorSangue = input.IsDoadorSangue
	profile.UltimaDoacao = input.UltimaDoacao
	profile.ContatoEmergenciaNome = input.ContatoEmergenciaNome
	profile.ContatoEmergenciaTelefone = input.ContatoEmergenciaTelefone
	profile.AvatarURL = input.AvatarURL

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// ListMembers returns members with pagination and name/email search
func (s *ProfileService) ListMembers(search string, page, limit int) ([]models.Profile, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	var profiles []models.Profile
	var total int64

	query := s.db.Model(&models.Profile{})
	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// ApproveMember flags a member as approved by the administration
func (s *ProfileService) ApproveMember(profileID uint) error {
	result := s.db.Model(&models.Profile{}).Where("id = ?", profileID).
		Updates(map[string]interface{}{
			"is_aprovado": true,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("integrante não encontrado")
	}
	return nil
}

// AdminUpdateInput carries the admin-assignable profile fields
type AdminUpdateInput struct {
	Status     *string `json:"status"`
	Funcao     *string `json:"funcao"`
	IsAdmin    *bool   `json:"is_admin"`
	IsAprovado *bool   `json:"is_aprovado"`
}

// AdminUpdateMember applies admin-assigned status, role and flags
func (s *ProfileService) AdminUpdateMember(profileID uint, input AdminUpdateInput) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Funcao != nil {
		updates["funcao"] = *input.Funcao
	}
	if input.IsAdmin != nil {
		updates["is_admin"] = *input.IsAdmin
	}
	if input.IsAprovado != nil {
		updates["is_aprovado"] = *input.IsAprovado
	}

	result := s.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("integrante não encontrado")
	}
	return nil
}
