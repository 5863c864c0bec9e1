package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
)

func TestBuildAssignments(t *testing.T) {
	t.Run("one pending assignment per team", func(t *testing.T) {
		teams := []models.Team{
			{ID: 7, Nome: "Equipe Alfa"},
			{ID: 9, Nome: "Equipe Beta"},
		}

		assignments := BuildAssignments(42, teams)

		assert.Len(t, assignments, 2)
		for i, a := range assignments {
			assert.Equal(t, uint(42), a.QuestID)
			assert.Equal(t, teams[i].ID, a.EquipeID)
			assert.Equal(t, models.QuestStatusPendente, a.Status)
		}
	})

	t.Run("no teams yields no assignments", func(t *testing.T) {
		assignments := BuildAssignments(42, nil)
		assert.Empty(t, assignments)
	})
}
