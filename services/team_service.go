// services/team_service.go - Team formation and membership business logic
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// ================== VALIDATION RULES ==================

// ValidateTeamName enforces the 3-50 character rule
func ValidateTeamName(nome string) error {
	nome = strings.TrimSpace(nome)
	if len([]rune(nome)) < 3 {
		return errors.New("o nome da equipe deve ter pelo menos 3 caracteres")
	}
	if len([]rune(nome)) > 50 {
		return errors.New("o nome da equipe deve ter no máximo 50 caracteres")
	}
	return nil
}

// HasTeamCapacity reports whether one more member fits under the game's cap.
// Pending requests count against the cap.
func HasTeamCapacity(memberCount, cap int) bool {
	if cap <= 0 {
		return true
	}
	return memberCount < cap
}

// ================== TEAM CRUD OPERATIONS ==================

// CreateTeam creates a team with the creator as owner. The team starts
// pending until an admin approves it; the owner's membership is active
// immediately.
func (s *TeamService) CreateTeam(gameID uint, nome string, creatorID uint) (*models.Team, error) {
	if err := ValidateTeamName(nome); err != nil {
		return nil, err
	}

	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		return nil, errors.New("game não encontrado")
	}

	if s.IsGameMember(creatorID, gameID) {
		return nil, errors.New("você já faz parte de uma equipe neste game")
	}

	team := &models.Team{
		GameID:  gameID,
		Nome:    strings.TrimSpace(nome),
		Status:  models.TeamStatusPendente,
		LiderID: creatorID,
	}

	// Create team and add creator as owner in a transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := &models.Membership{
			EquipeID:     team.ID,
			GameID:       gameID,
			IntegranteID: creatorID,
			Status:       models.MembershipStatusAtivo,
			IsOwner:      true,
			CreatedAt:    time.Now(),
		}

		return tx.Create(member).Error
	})

	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeamByID retrieves a team with members preloaded
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Integrantes").
		Preload("Integrantes.Integrante").
		Preload("Lider").
		First(&team, teamID).Error

	if err != nil {
		return nil, err
	}

	return &team, nil
}

// GetGameTeams retrieves all teams of a game
func (s *TeamService) GetGameTeams(gameID uint) ([]models.Team, error) {
	var teams []models.Team

	err := s.db.Where("game_id = ?", gameID).
		Preload("Integrantes").
		Preload("Integrantes.Integrante").
		Order("created_at ASC").
		Find(&teams).Error

	return teams, err
}

// UpdateTeamStatus is the admin approval action (ativa/rejeitada). No member
// count validation happens here.
func (s *TeamService) UpdateTeamStatus(teamID uint, status models.TeamStatus) error {
	if status != models.TeamStatusAtiva && status != models.TeamStatusRejeitada && status != models.TeamStatusPendente {
		return errors.New("status de equipe inválido")
	}

	result := s.db.Model(&models.Team{}).Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("equipe não encontrada")
	}
	return nil
}

// ================== TEAM MEMBERSHIP OPERATIONS ==================

// RequestJoin creates a pending membership, respecting the game's team size
// cap. The team row is locked for the duration of the transaction so two
// concurrent requests cannot both pass the capacity check.
func (s *TeamService) RequestJoin(teamID, memberID uint) (*models.Membership, error) {
	member := &models.Membership{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamQuery := tx
		if tx.Dialector.Name() == "postgres" {
			// sqlite has no SELECT ... FOR UPDATE
			teamQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var team models.Team
		if err := teamQuery.First(&team, teamID).Error; err != nil {
			return errors.New("equipe não encontrada")
		}

		if team.Status == models.TeamStatusRejeitada {
			return errors.New("equipe rejeitada não aceita inscrições")
		}

		var game models.Game
		if err := tx.First(&game, team.GameID).Error; err != nil {
			return errors.New("game não encontrado")
		}

		var existing int64
		if err := tx.Model(&models.Membership{}).
			Where("game_id = ? AND integrante_id = ?", team.GameID, memberID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errors.New("você já faz parte de uma equipe neste game")
		}

		var memberCount int64
		if err := tx.Model(&models.Membership{}).
			Where("equipe_id = ?", teamID).
			Count(&memberCount).Error; err != nil {
			return err
		}

		if !HasTeamCapacity(int(memberCount), game.QuantidadeIntegrantes) {
			return errors.New("a equipe já atingiu o número máximo de integrantes")
		}

		member.EquipeID = teamID
		member.GameID = team.GameID
		member.IntegranteID = memberID
		member.Status = models.MembershipStatusPendente
		member.IsOwner = false

		return tx.Create(member).Error
	})

	if err != nil {
		return nil, err
	}

	return member, nil
}

// ApproveMembership activates a pending join request. Only the team leader
// or an administrator may approve.
func (s *TeamService) ApproveMembership(membershipID, requesterID uint, requesterIsAdmin bool) error {
	var member models.Membership
	if err := s.db.First(&member, membershipID).Error; err != nil {
		return errors.New("inscrição não encontrada")
	}

	if !requesterIsAdmin && !s.isTeamOwner(requesterID, member.EquipeID) {
		return errors.New("apenas o líder da equipe pode aprovar inscrições")
	}

	return s.db.Model(&member).Updates(map[string]interface{}{
		"status":     models.MembershipStatusAtivo,
		"updated_at": time.Now(),
	}).Error
}

// RejectMembership removes a pending join request. The row is deleted so the
// member can request another team of the same game.
func (s *TeamService) RejectMembership(membershipID, requesterID uint, requesterIsAdmin bool) error {
	var member models.Membership
	if err := s.db.First(&member, membershipID).Error; err != nil {
		return errors.New("inscrição não encontrada")
	}

	if !requesterIsAdmin && !s.isTeamOwner(requesterID, member.EquipeID) {
		return errors.New("apenas o líder da equipe pode rejeitar inscrições")
	}

	if member.IsOwner {
		return errors.New("não é possível rejeitar o líder da equipe")
	}

	return s.db.Delete(&member).Error
}

// LeaveTeam removes a member from a team. The owner cannot leave; there is
// no leadership transfer path in the member-facing flow, deleting or
// reassigning the team is an admin action.
func (s *TeamService) LeaveTeam(teamID, memberID uint) error {
	var member models.Membership
	if err := s.db.Where("equipe_id = ? AND integrante_id = ?", teamID, memberID).
		First(&member).Error; err != nil {
		return errors.New("você não faz parte desta equipe")
	}

	if member.IsOwner {
		return errors.New("o líder não pode sair da equipe. Procure a administração")
	}

	return s.db.Delete(&member).Error
}

// RemoveMember removes another member from the team (leader or admin action)
func (s *TeamService) RemoveMember(teamID, requesterID, memberID uint, requesterIsAdmin bool) error {
	if !requesterIsAdmin && !s.isTeamOwner(requesterID, teamID) {
		return errors.New("apenas o líder da equipe pode remover integrantes")
	}

	var target models.Membership
	if err := s.db.Where("equipe_id = ? AND integrante_id = ?", teamID, memberID).
		First(&target).Error; err != nil {
		return errors.New("integrante não encontrado na equipe")
	}

	if target.IsOwner {
		return errors.New("o líder da equipe não pode ser removido")
	}

	return s.db.Delete(&target).Error
}

// GetTeamMembers returns all members of a team
func (s *TeamService) GetTeamMembers(teamID uint) ([]models.Membership, error) {
	var members []models.Membership

	err := s.db.Where("equipe_id = ?", teamID).
		Preload("Integrante").
		Order("is_owner DESC, created_at ASC").
		Find(&members).Error

	return members, err
}

// ================== HELPER FUNCTIONS ==================

// IsGameMember checks if a member already belongs to any team of the game
func (s *TeamService) IsGameMember(memberID, gameID uint) bool {
	var count int64
	s.db.Model(&models.Membership{}).
		Where("game_id = ? AND integrante_id = ?", gameID, memberID).
		Count(&count)
	return count > 0
}

func (s *TeamService) isTeamOwner(memberID, teamID uint) bool {
	var member models.Membership
	err := s.db.Where("equipe_id = ? AND integrante_id = ? AND is_owner = ?", teamID, memberID, true).
		First(&member).Error
	return err == nil
}
