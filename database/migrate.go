// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	// Core application models
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Game{},
		&models.Quest{},
		&models.QuestAssignment{},
		&models.Team{},
		&models.Membership{},
		&models.ConfigGameType{},
		&models.ConfigPaymentMethod{},
		&models.ConfigStatus{},
		&models.ConfigRole{},
	); err != nil {
		log.Fatalf("❌ Failed to run core migrations: %v", err)
	}

	log.Println("✅ Core migrations completed")

	// Run billing migrations
	if err := RunBillingMigrations(db); err != nil {
		log.Fatalf("❌ Failed to run billing migrations: %v", err)
	}

	// Create indexes for core tables
	createCoreIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// Profile indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_profiles_email ON profiles(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_profiles_aprovado ON profiles(is_aprovado)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_profiles_admin ON profiles(is_admin)")

	// Game indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_status ON games(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_data_inicio ON games(data_inicio)")

	// Quest indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_game ON quests(game_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_status ON quests(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_numero ON quests(game_id, numero)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_equipe_quests_equipe ON equipe_quests(equipe_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_equipe_quests_quest ON equipe_quests(quest_id)")

	// Team indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_equipes_game ON game_equipes(game_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_equipes_lider ON game_equipes(lider_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_equipe_integrantes_equipe ON equipe_integrantes(equipe_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_equipe_integrantes_integrante ON equipe_integrantes(integrante_id)")

	// One active/pending membership per member per game. The workflow used to
	// check this with a query-then-insert sequence; the unique index closes
	// the race between concurrent join requests.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_integrante_game ON equipe_integrantes(game_id, integrante_id)")

	log.Println("✅ Core indexes created successfully")
}
