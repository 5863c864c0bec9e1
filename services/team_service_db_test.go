package services

import (
	"testing"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestGame(t *testing.T, db *gorm.DB, cap int) *models.Game {
	t.Helper()

	game := &models.Game{
		Titulo:                "Game de Teste",
		QuantidadeIntegrantes: cap,
		Status:                models.GameStatusAtivo,
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func TestRequestJoin(t *testing.T) {
	db := newTestDB(t)
	service := NewTeamService(db)

	game := createTestGame(t, db, 2)
	leader := createTestProfile(t, db, "Maria")

	team, err := service.CreateTeam(game.ID, "Equipe Alpha", leader.ID)
	require.NoError(t, err)

	t.Run("creates a pending membership", func(t *testing.T) {
		member := createTestProfile(t, db, "João")

		membership, err := service.RequestJoin(team.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, models.MembershipStatusPendente, membership.Status)
		assert.Equal(t, team.ID, membership.EquipeID)
		assert.Equal(t, game.ID, membership.GameID)
		assert.False(t, membership.IsOwner)
	})

	t.Run("rejects a second team in the same game", func(t *testing.T) {
		other, err := service.CreateTeam(game.ID, "Equipe Beta", createTestProfile(t, db, "Pedro").ID)
		require.NoError(t, err)

		_, err = service.RequestJoin(other.ID, leader.ID)
		assert.EqualError(t, err, "você já faz parte de uma equipe neste game")
	})

	t.Run("rejects a full team", func(t *testing.T) {
		late := createTestProfile(t, db, "Ana")

		_, err := service.RequestJoin(team.ID, late.ID)
		assert.EqualError(t, err, "a equipe já atingiu o número máximo de integrantes")
	})

	t.Run("rejects a rejected team", func(t *testing.T) {
		rejected := &models.Team{
			GameID:  game.ID,
			Nome:    "Equipe Gama",
			Status:  models.TeamStatusRejeitada,
			LiderID: leader.ID,
		}
		require.NoError(t, db.Create(rejected).Error)

		_, err := service.RequestJoin(rejected.ID, createTestProfile(t, db, "Lucas").ID)
		assert.EqualError(t, err, "equipe rejeitada não aceita inscrições")
	})
}
