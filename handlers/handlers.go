// handlers/handlers.go - Service wiring for the HTTP layer
package handlers

import (
	"github.com/ddduartediego/sistema-coringas-sub000/database"
	"github.com/ddduartediego/sistema-coringas-sub000/services"

	"github.com/go-playground/validator/v10"
)

var (
	gameService    *services.GameService
	questService   *services.QuestService
	teamService    *services.TeamService
	chargeService  *services.ChargeService
	profileService *services.ProfileService
	whatsService   *services.WhatsAppService
	storageService *services.StorageService

	validate = validator.New()
)

// InitHandlers initializes every service used by the HTTP handlers
func InitHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}

	gameService = services.NewGameService(db)
	questService = services.NewQuestService(db)
	teamService = services.NewTeamService(db)
	chargeService = services.NewChargeService(db)
	profileService = services.NewProfileService(db)
	whatsService = services.NewWhatsAppServiceFromEnv()
	storageService = services.NewStorageServiceFromEnv()
}
