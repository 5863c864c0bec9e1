package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ddduartediego/sistema-coringas-sub000/database"
	"github.com/ddduartediego/sistema-coringas-sub000/models"
)

var gameTypes = []string{"Online", "Presencial", "Híbrido"}

var paymentMethods = []string{"PIX", "Dinheiro", "Cartão de Crédito", "Cartão de Débito", "Transferência"}

var memberStatuses = []string{"Veterano", "Calouro", "Aposentado", "Patrocinador", "Comercial"}

var memberRoles = []string{"Sub", "Tesouraria", "Mídia", "Qualidade"}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	// InitDB runs the migrations before returning
	database.InitDB()
	db := database.GetDB()

	seedConfig(db)
	seedAdmin(db)

	fmt.Println("\n✓ Seed completed successfully!")
}

func seedConfig(db *gorm.DB) {
	for _, nome := range gameTypes {
		upsert(db, &models.ConfigGameType{Nome: nome}, nome)
	}
	for _, nome := range paymentMethods {
		upsert(db, &models.ConfigPaymentMethod{Nome: nome}, nome)
	}
	for _, nome := range memberStatuses {
		upsert(db, &models.ConfigStatus{Nome: nome}, nome)
	}
	for _, nome := range memberRoles {
		upsert(db, &models.ConfigRole{Nome: nome}, nome)
	}
	fmt.Println("✓ Config tables seeded")
}

func upsert(db *gorm.DB, record interface{}, nome string) {
	result := db.Where("nome = ?", nome).FirstOrCreate(record)
	if result.Error != nil {
		log.Printf("Error seeding %q: %v\n", nome, result.Error)
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	var count int64
	db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		fmt.Printf("Admin %s already exists, skipping\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	admin := models.Profile{
		Name:       "Administrador",
		Email:      &email,
		Password:   string(hash),
		IsAdmin:    true,
		IsAprovado: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin profile:", err)
	}
	fmt.Printf("✓ Admin profile created: %s\n", email)
}
