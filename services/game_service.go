// services/game_service.go - Game instance business logic
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// GameInput carries the editable fields of a game
type GameInput struct {
	Titulo                string     `json:"titulo"`
	DescricaoCurta        string     `json:"descricao_curta"`
	Descricao             string     `json:"descricao"`
	QuantidadeIntegrantes int        `json:"quantidade_integrantes"`
	DataInicio            *time.Time `json:"data_inicio"`
	ImagemURL             string     `json:"imagem_url"`
	Tipo                  string     `json:"tipo"`
}

// CreateGame creates a game in pending status
func (s *GameService) CreateGame(input GameInput) (*models.Game, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return nil, errors.New("o título do game é obrigatório")
	}
	if input.QuantidadeIntegrantes <= 0 {
		return nil, errors.New("a quantidade de integrantes por equipe deve ser maior que zero")
	}

	game := &models.Game{
		Titulo:                strings.TrimSpace(input.Titulo),
		DescricaoCurta:        input.DescricaoCurta,
		Descricao:             input.Descricao,
		QuantidadeIntegrantes: input.QuantidadeIntegrantes,
		DataInicio:            input.DataInicio,
		ImagemURL:             input.ImagemURL,
		Tipo:                  input.Tipo,
		Status:                models.GameStatusPendente,
	}

	if err := s.db.Create(game).Error; err != nil {
		return nil, err
	}

	return game, nil
}

// GetGameByID loads a game
func (s *GameService) GetGameByID(gameID uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		return nil, errors.New("game não encontrado")
	}
	return &game, nil
}

// ListGames returns all games, newest first. Non-admin callers only see
// games already activated.
func (s *GameService) ListGames(includePending bool) ([]models.Game, error) {
	var games []models.Game

	query := s.db.Order("created_at DESC")
	if !includePending {
		query = query.Where("status IN ?", []models.GameStatus{
			models.GameStatusAtivo, models.GameStatusEncerrado,
		})
	}

	err := query.Find(&games).Error
	return games, err
}

// UpdateGame edits the game fields
func (s *GameService) UpdateGame(gameID uint, input GameInput) error {
	if strings.TrimSpace(input.Titulo) == "" {
		return errors.New("o título do game é obrigatório")
	}

	result := s.db.Model(&models.Game{}).Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"titulo":                 strings.TrimSpace(input.Titulo),
			"descricao_curta":        input.DescricaoCurta,
			"descricao":              input.Descricao,
			"quantidade_integrantes": input.QuantidadeIntegrantes,
			"data_inicio":            input.DataInicio,
			"imagem_url":             input.ImagemURL,
			"tipo":                   input.Tipo,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("game não encontrado")
	}
	return nil
}

// UpdateStatus sets the game status. Transitions are manual admin actions;
// nothing flips a game automatically when its start date arrives.
func (s *GameService) UpdateStatus(gameID uint, status models.GameStatus) error {
	switch status {
	case models.GameStatusPendente, models.GameStatusAtivo,
		models.GameStatusInativo, models.GameStatusEncerrado:
	default:
		return errors.New("status de game inválido")
	}

	result := s.db.Model(&models.Game{}).Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("game não encontrado")
	}
	return nil
}
