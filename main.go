// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/ddduartediego/sistema-coringas-sub000/database"
	"github.com/ddduartediego/sistema-coringas-sub000/handlers"
	"github.com/ddduartediego/sistema-coringas-sub000/handlers/admin"
	"github.com/ddduartediego/sistema-coringas-sub000/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Initialize handler services
	handlers.InitHandlers()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    10 * 1024 * 1024, // 10MB, quest PDFs included
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/login", handlers.Login)

	// Public game routes. Listing routes take the optional auth so an
	// authenticated admin also sees pending games and hidden quests.
	api.Get("/games", middleware.OptionalAuthMiddleware, handlers.GetGames)
	api.Get("/games/:id", handlers.GetGame)
	api.Get("/games/:id/quests", middleware.OptionalAuthMiddleware, handlers.GetGameQuests)
	api.Get("/games/:id/teams", handlers.GetGameTeams)

	// Config lookups
	api.Get("/config/tipos-game", handlers.GetGameTypes)
	api.Get("/config/formas-pagamento", handlers.GetPaymentMethods)
	api.Get("/config/status", handlers.GetStatuses)
	api.Get("/config/funcoes", handlers.GetRoles)

	// Member routes. These span several prefixes, so the auth middleware is
	// attached per route instead of through a group.
	api.Post("/games/:id/teams", middleware.AuthMiddleware, handlers.CreateTeam)
	api.Get("/teams/:id", middleware.AuthMiddleware, handlers.GetTeam)
	api.Post("/teams/:id/join", middleware.AuthMiddleware, handlers.JoinTeam)
	api.Post("/teams/:id/leave", middleware.AuthMiddleware, handlers.LeaveTeam)
	api.Get("/teams/:id/members", middleware.AuthMiddleware, handlers.GetTeamMembers)
	api.Get("/teams/:id/quests", middleware.AuthMiddleware, handlers.GetTeamQuests)
	api.Delete("/teams/:id/members/:memberId", middleware.AuthMiddleware, handlers.RemoveMember)
	api.Put("/memberships/:id/approve", middleware.AuthMiddleware, handlers.ApproveMembership)
	api.Put("/memberships/:id/reject", middleware.AuthMiddleware, handlers.RejectMembership)

	api.Get("/profiles/me", middleware.AuthMiddleware, handlers.GetMyProfile)
	api.Put("/profiles/me", middleware.AuthMiddleware, handlers.UpdateMyProfile)
	api.Get("/profiles/me/pendencias", middleware.AuthMiddleware, handlers.GetMyPendencias)
	api.Get("/cobrancas/me", middleware.AuthMiddleware, handlers.GetMyCharges)

	// Admin auth; credential endpoints get the stricter rate limit
	api.Post("/admin/login", middleware.FiberAuthRateLimitMiddleware(), admin.Login)
	api.Post("/admin/logout", admin.Logout)
	api.Get("/admin/verify", middleware.AdminAuthMiddleware, admin.VerifyToken)

	// Admin game management
	api.Post("/games", middleware.AdminAuthMiddleware, handlers.CreateGame)
	api.Put("/games/:id", middleware.AdminAuthMiddleware, handlers.UpdateGame)
	api.Put("/games/:id/status", middleware.AdminAuthMiddleware, handlers.UpdateGameStatus)

	// Admin quest management
	api.Post("/games/:id/quests", middleware.AdminAuthMiddleware, handlers.CreateQuest)
	api.Put("/quests/:id", middleware.AdminAuthMiddleware, handlers.UpdateQuest)
	api.Delete("/quests/:id", middleware.AdminAuthMiddleware, handlers.DeleteQuest)
	api.Put("/quests/:id/visibility", middleware.AdminAuthMiddleware, handlers.ToggleQuestVisibility)
	api.Put("/quests/:id/status", middleware.AdminAuthMiddleware, handlers.UpdateQuestStatus)
	api.Put("/quests/:id/pdf", middleware.AdminAuthMiddleware, handlers.AttachQuestPDF)

	// Admin team approval
	api.Put("/teams/:id/status", middleware.AdminAuthMiddleware, handlers.UpdateTeamStatus)

	// Admin billing
	api.Post("/cobrancas", middleware.AdminAuthMiddleware, handlers.CreateCharge)
	api.Get("/cobrancas", middleware.AdminAuthMiddleware, handlers.GetCharges)
	api.Put("/cobrancas/:id/parcelas", middleware.AdminAuthMiddleware, handlers.ReplaceInstallments)
	api.Put("/cobrancas/pagamentos/:id", middleware.AdminAuthMiddleware, handlers.RegisterPayment)
	api.Delete("/cobrancas/pagamentos/:id", middleware.AdminAuthMiddleware, handlers.DeleteChargeAssignment)
	api.Post("/cobrancas/pagamentos/:id/notificar", middleware.AdminAuthMiddleware, handlers.NotifyCharge)

	// Admin member management
	api.Get("/admin/integrantes", middleware.AdminAuthMiddleware, admin.GetMembers)
	api.Get("/admin/integrantes/:id", middleware.AdminAuthMiddleware, admin.GetMember)
	api.Get("/admin/integrantes/:id/cobrancas", middleware.AdminAuthMiddleware, handlers.GetMemberCharges)
	api.Put("/admin/integrantes/:id", middleware.AdminAuthMiddleware, admin.UpdateMember)
	api.Post("/admin/integrantes/:id/approve", middleware.AdminAuthMiddleware, admin.ApproveMember)

	// Admin config management
	api.Post("/config/tipos-game", middleware.AdminAuthMiddleware, handlers.CreateGameType)
	api.Post("/config/formas-pagamento", middleware.AdminAuthMiddleware, handlers.CreatePaymentMethod)
	api.Post("/config/status", middleware.AdminAuthMiddleware, handlers.CreateStatus)
	api.Post("/config/funcoes", middleware.AdminAuthMiddleware, handlers.CreateRole)

	// Upload proxy (admin only; routes around the storage provider's
	// client-side permission restriction)
	api.Post("/upload", middleware.AdminAuthMiddleware, handlers.Upload)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	// Start HTTP server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("📦 Storage configured: %v", os.Getenv("STORAGE_URL") != "")
	log.Printf("💬 WhatsApp gateway configured: %v", os.Getenv("WHATSAPP_API_URL") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		// Additional production checks
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
		if os.Getenv("STORAGE_URL") == "" {
			log.Println("WARNING: STORAGE_URL not configured, uploads will fail")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
