package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTeamName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Os Coringas", false},
		{"minimum length", "Abc", false},
		{"maximum length", strings.Repeat("a", 50), false},
		{"too short", "Ab", true},
		{"too long", strings.Repeat("a", 51), true},
		{"whitespace only", "   ", true},
		{"whitespace trimmed before counting", "  Ab  ", true},
		{"accented runes count as one character", "Nós", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeamName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasTeamCapacity(t *testing.T) {
	tests := []struct {
		name        string
		memberCount int
		cap         int
		fits        bool
	}{
		{"room left", 3, 4, true},
		{"at the cap", 4, 4, false},
		{"over the cap", 5, 4, false},
		{"empty team", 0, 4, true},
		{"zero cap means unlimited", 100, 0, true},
		{"negative cap means unlimited", 100, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, HasTeamCapacity(tt.memberCount, tt.cap))
		})
	}
}
