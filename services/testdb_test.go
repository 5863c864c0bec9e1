package services

import (
	"testing"

	"github.com/ddduartediego/sistema-coringas-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// model set.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Game{},
		&models.Team{},
		&models.Membership{},
		&models.Charge{},
		&models.ChargeAssignment{},
		&models.Installment{},
		&models.ConfigPaymentMethod{},
	))

	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()

	profile := &models.Profile{UserID: uuid.NewString(), Name: name, IsAprovado: true}
	require.NoError(t, db.Create(profile).Error)
	return profile
}
