package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
)

func completeProfile() models.Profile {
	email := "joao@example.com"
	nascimento := time.Date(1995, time.March, 10, 0, 0, 0, 0, time.UTC)

	return models.Profile{
		Name:                      "João Silva",
		Email:                     &email,
		Apelido:                   "Jota",
		CPF:                       "123.456.789-00",
		RG:                        "12.345.678-9",
		DataNascimento:            &nascimento,
		Genero:                    "Masculino",
		Telefone:                  "11999990000",
		Profissao:                 "Analista",
		EstadoCivil:               "Solteiro",
		TamanhoCamisa:             "M",
		CEP:                       "01310-100",
		Rua:                       "Av. Paulista",
		Numero:                    "1000",
		Bairro:                    "Bela Vista",
		Cidade:                    "São Paulo",
		Estado:                    "SP",
		TipoSanguineo:             "O+",
		ContatoEmergenciaNome:     "Maria Silva",
		ContatoEmergenciaTelefone: "11988880000",
	}
}

func TestIncompleteProfileFields(t *testing.T) {
	t.Run("complete profile has no pending fields", func(t *testing.T) {
		assert.Empty(t, IncompleteProfileFields(completeProfile()))
	})

	t.Run("missing fields are reported by label", func(t *testing.T) {
		p := completeProfile()
		p.CPF = ""
		p.Telefone = "   "
		p.DataNascimento = nil

		missing := IncompleteProfileFields(p)

		assert.Contains(t, missing, "CPF")
		assert.Contains(t, missing, "Telefone")
		assert.Contains(t, missing, "Data de Nascimento")
		assert.Len(t, missing, 3)
	})

	t.Run("nil email counts as missing", func(t *testing.T) {
		p := completeProfile()
		p.Email = nil
		assert.Contains(t, IncompleteProfileFields(p), "E-mail")
	})

	t.Run("empty profile reports every required field", func(t *testing.T) {
		missing := IncompleteProfileFields(models.Profile{})
		assert.Len(t, missing, 20)
		assert.NotContains(t, missing, "Última Doação")
	})
}

func TestIncompleteProfileFieldsBloodDonor(t *testing.T) {
	t.Run("donor without a last donation date is incomplete", func(t *testing.T) {
		p := completeProfile()
		p.IsDoadorSangue = true
		p.UltimaDoacao = nil

		missing := IncompleteProfileFields(p)
		assert.Equal(t, []string{"Última Doação"}, missing)
	})

	t.Run("donor with a last donation date is complete", func(t *testing.T) {
		p := completeProfile()
		p.IsDoadorSangue = true
		doacao := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
		p.UltimaDoacao = &doacao

		assert.Empty(t, IncompleteProfileFields(p))
	})

	t.Run("non-donor never owes a donation date", func(t *testing.T) {
		p := completeProfile()
		p.IsDoadorSangue = false
		p.UltimaDoacao = nil

		assert.Empty(t, IncompleteProfileFields(p))
	})
}
