// services/quest_service.go - Quest lifecycle business logic
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"gorm.io/gorm"
)

type QuestService struct {
	db *gorm.DB
}

func NewQuestService(db *gorm.DB) *QuestService {
	return &QuestService{db: db}
}

// QuestInput carries the editable fields of a quest
type QuestInput struct {
	Numero     int
	Titulo     string
	Descricao  string
	Pontos     int
	DataInicio *time.Time
	DataFim    *time.Time
}

// BuildAssignments returns one pending assignment per team for a new quest
func BuildAssignments(questID uint, teams []models.Team) []models.QuestAssignment {
	assignments := make([]models.QuestAssignment, 0, len(teams))
	for _, team := range teams {
		assignments = append(assignments, models.QuestAssignment{
			EquipeID: team.ID,
			QuestID:  questID,
			Status:   models.QuestStatusPendente,
		})
	}
	return assignments
}

// CreateQuest creates a quest and fans out one pending assignment per team
// already registered in the game, committed as a single transaction.
func (s *QuestService) CreateQuest(gameID uint, input QuestInput) (*models.Quest, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return nil, errors.New("o título da quest é obrigatório")
	}

	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		return nil, errors.New("game não encontrado")
	}

	quest := &models.Quest{
		GameID:     gameID,
		Numero:     input.Numero,
		Titulo:     strings.TrimSpace(input.Titulo),
		Descricao:  input.Descricao,
		Pontos:     input.Pontos,
		Status:     models.QuestStatusPendente,
		Visivel:    false,
		DataInicio: input.DataInicio,
		DataFim:    input.DataFim,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quest).Error; err != nil {
			return err
		}

		var teams []models.Team
		if err := tx.Where("game_id = ?", gameID).Find(&teams).Error; err != nil {
			return err
		}

		assignments := BuildAssignments(quest.ID, teams)
		if len(assignments) == 0 {
			return nil
		}

		return tx.Create(&assignments).Error
	})

	if err != nil {
		return nil, err
	}

	return quest, nil
}

// GetGameQuests lists quests of a game. Non-admin callers only see visible
// quests.
func (s *QuestService) GetGameQuests(gameID uint, includeHidden bool) ([]models.Quest, error) {
	var quests []models.Quest

	query := s.db.Where("game_id = ?", gameID)
	if !includeHidden {
		query = query.Where("visivel = ?", true)
	}

	err := query.Order("numero ASC").Find(&quests).Error
	return quests, err
}

// GetQuestByID retrieves a single quest
func (s *QuestService) GetQuestByID(questID uint) (*models.Quest, error) {
	var quest models.Quest
	if err := s.db.First(&quest, questID).Error; err != nil {
		return nil, err
	}
	return &quest, nil
}

// UpdateQuest edits the quest fields
func (s *QuestService) UpdateQuest(questID uint, input QuestInput) error {
	if strings.TrimSpace(input.Titulo) == "" {
		return errors.New("o título da quest é obrigatório")
	}

	result := s.db.Model(&models.Quest{}).Where("id = ?", questID).
		Updates(map[string]interface{}{
			"numero":      input.Numero,
			"titulo":      strings.TrimSpace(input.Titulo),
			"descricao":   input.Descricao,
			"pontos":      input.Pontos,
			"data_inicio": input.DataInicio,
			"data_fim":    input.DataFim,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("quest não encontrada")
	}
	return nil
}

// DeleteQuest removes the quest and its team assignments
func (s *QuestService) DeleteQuest(questID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quest_id = ?", questID).
			Delete(&models.QuestAssignment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Quest{}, questID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("quest não encontrada")
		}
		return nil
	})
}

// ToggleVisibility flips the quest visibility flag
func (s *QuestService) ToggleVisibility(questID uint) (bool, error) {
	var quest models.Quest
	if err := s.db.First(&quest, questID).Error; err != nil {
		return false, errors.New("quest não encontrada")
	}

	visivel := !quest.Visivel
	err := s.db.Model(&quest).Updates(map[string]interface{}{
		"visivel":    visivel,
		"updated_at": time.Now(),
	}).Error

	return visivel, err
}

// UpdateStatus sets the quest status. Transitions are unconstrained, any
// status can move to any other.
func (s *QuestService) UpdateStatus(questID uint, status models.QuestStatus) error {
	switch status {
	case models.QuestStatusPendente, models.QuestStatusAtivo,
		models.QuestStatusInativo, models.QuestStatusFinalizada:
	default:
		return errors.New("status de quest inválido")
	}

	result := s.db.Model(&models.Quest{}).Where("id = ?", questID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("quest não encontrada")
	}
	return nil
}

// AttachPDF stores the uploaded PDF URL on the quest. The upload itself is a
// separate storage call; this is the second phase of that sequence.
func (s *QuestService) AttachPDF(questID uint, url string) error {
	if url == "" {
		return errors.New("URL do arquivo é obrigatória")
	}

	result := s.db.Model(&models.Quest{}).Where("id = ?", questID).
		Updates(map[string]interface{}{
			"arquivo_pdf": url,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("quest não encontrada")
	}
	return nil
}

// GetTeamAssignments lists the quest assignments of a team
func (s *QuestService) GetTeamAssignments(teamID uint) ([]models.QuestAssignment, error) {
	var assignments []models.QuestAssignment

	err := s.db.Where("equipe_id = ?", teamID).
		Preload("Quest").
		Find(&assignments).Error

	return assignments, err
}
