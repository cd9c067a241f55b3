package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
	"github.com/charlykso/smart-s-sub003/app/routes/classes"
	"github.com/charlykso/smart-s-sub003/app/routes/dashboard"
	"github.com/charlykso/smart-s-sub003/app/routes/fees"
	"github.com/charlykso/smart-s-sub003/app/routes/parents"
	"github.com/charlykso/smart-s-sub003/app/routes/payments"
	"github.com/charlykso/smart-s-sub003/app/routes/schools"
	"github.com/charlykso/smart-s-sub003/app/routes/students"
	"github.com/charlykso/smart-s-sub003/app/services"
)

// customErrorHandler renders every error as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to West Africa Time
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Lagos location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("WAT", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth and user administration routes
	auth.SetupAuthRoutes(app)
	auth.SetupUserRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup school structure routes
	schools.SetupSchoolRoutes(app)
	classes.SetupClassRoutes(app)
	students.SetupStudentRoutes(app)
	parents.SetupParentRoutes(app)

	// Setup fee and payment routes
	fees.SetupFeeRoutes(app)
	payments.SetupPaymentRoutes(app)

	// Start server
	port := config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
