package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Get("/:id", handler.GetHabit)
	habits.Patch("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/archive", handler.ArchiveHabit)
	habits.Post("/:id/unarchive", handler.UnarchiveHabit)

	habits.Get("/:id/entries", handler.GetEntries)
	habits.Put("/:id/entries/:date", handler.LogEntry)
	habits.Patch("/:id/entries/:date", handler.AmendEntry)
	habits.Delete("/:id/entries/:date", handler.DeleteEntry)

	habits.Get("/:id/stats", handler.GetHabitStats)
	habits.Get("/:id/export/csv", handler.ExportCSV)
	habits.Get("/:id/export/json", handler.ExportJSON)

	api.Get("/overview", handler.AuthRequired, handler.GetOverview)
}
