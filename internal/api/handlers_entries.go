package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/services"
)

func (handler *Handler) LogEntry(c *fiber.Ctx) error {
	return handler.writeEntry(c, handler.habitService.LogEntry)
}

func (handler *Handler) AmendEntry(c *fiber.Ctx) error {
	return handler.writeEntry(c, handler.habitService.AmendEntry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	day, err := services.ParseDay(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	habit, err := handler.habitService.DeleteEntry(user.ID, habitID, day, handler.now())
	if err != nil {
		return respondHabitError(c, err, "failed to delete entry")
	}
	return c.JSON(buildHabitView(habit))
}

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	from, err := services.ParseDay(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := services.ParseDay(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	entries, err := handler.habitService.EntriesBetween(user.ID, habitID, from, to)
	if err != nil {
		return respondHabitError(c, err, "failed to fetch entries")
	}
	return c.JSON(buildEntryViews(entries))
}

type entryWriter func(userID uint, habitID uint, day time.Time, value float64, note string, now time.Time) (models.Habit, error)

func (handler *Handler) writeEntry(c *fiber.Ctx, write entryWriter) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	day, err := services.ParseDay(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := write(user.ID, habitID, day, payload.Value, payload.Note, handler.now())
	if err != nil {
		return respondHabitError(c, err, "failed to save entry")
	}
	return c.JSON(buildHabitView(habit))
}
