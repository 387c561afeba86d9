package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"medihome/backend/catalog"
	"medihome/backend/config"
	"medihome/backend/controllers"
	"medihome/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Base catalog first, database-backed custom routines as fallback.
	repo := catalog.Chain{catalog.NewStatic(), catalog.NewStore(db)}

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", middleware.AuthMiddleware(cfg), authController.Me)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	therapistMiddleware := middleware.TherapistMiddleware(cfg)

	// Routine catalog, assignment and progress
	routinesController := controllers.NewRoutinesController(db, cfg, repo)
	progressController := controllers.NewProgressController(db, cfg, repo)
	therapistController := controllers.NewTherapistController(db, cfg)

	routines := app.Group("/api/routines", authMiddleware)
	routines.Get("/", routinesController.GetRoutines)
	routines.Get("/assigned", progressController.GetAssigned)
	routines.Post("/assign", progressController.AssignRoutine)
	routines.Get("/progress", progressController.GetProgress)
	routines.Post("/progress", progressController.MarkDayDone)
	routines.Get("/stats", progressController.GetStats)

	// Therapist panel
	routines.Get("/therapist/mine", therapistMiddleware, therapistController.Mine)
	routines.Get("/therapist/summary", therapistMiddleware, therapistController.Summary)

	// Routine authoring
	routines.Post("/", therapistMiddleware, routinesController.CreateRoutine)
	routines.Put("/:id", therapistMiddleware, routinesController.UpdateRoutine)
	routines.Delete("/:id", therapistMiddleware, routinesController.DeleteRoutine)

	// Health
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}
