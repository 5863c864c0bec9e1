// database/billing_migrations.go - Billing ("cobranças") migrations
package database

import (
	"log"

	"github.com/ddduartediego/sistema-coringas-sub000/models"

	"gorm.io/gorm"
)

// RunBillingMigrations creates all billing tables
func RunBillingMigrations(db *gorm.DB) error {
	log.Println("Running billing migrations...")

	if err := db.AutoMigrate(
		&models.Charge{},
		&models.ChargeAssignment{},
		&models.Installment{},
	); err != nil {
		return err
	}

	if err := createBillingIndexes(db); err != nil {
		return err
	}

	log.Println("✅ Billing migrations completed successfully")
	return nil
}

// createBillingIndexes creates database indexes for billing tables
func createBillingIndexes(db *gorm.DB) error {
	log.Println("Creating billing indexes...")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_cobrancas_nome ON cobrancas(nome)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_cobrancas_vencimento ON cobrancas(ano_vencimento, mes_vencimento)")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_cobranca_integrantes_cobranca ON cobranca_integrantes(cobranca_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_cobranca_integrantes_integrante ON cobranca_integrantes(integrante_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_cobranca_integrantes_status ON cobranca_integrantes(status)")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_cobranca_parcelas_cobranca ON cobranca_parcelas(cobranca_id)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_cobranca_parcelas_numero ON cobranca_parcelas(cobranca_id, numero)")

	log.Println("✅ Billing indexes created successfully")
	return nil
}
