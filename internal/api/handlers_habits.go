package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/services"
)

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	includeArchived := c.QueryBool("include_archived", false)
	habits, err := handler.habitService.ListHabits(user.ID, includeArchived)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list habits")
	}

	views := make([]habitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, buildHabitView(habit))
	}
	return c.JSON(views)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.CreateHabit(user.ID, habitInputFromPayload(payload), handler.now())
	if err != nil {
		return respondHabitError(c, err, "failed to create habit")
	}
	return c.Status(fiber.StatusCreated).JSON(buildHabitView(habit))
}

func (handler *Handler) GetHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	habit, err := handler.habitService.GetHabit(user.ID, habitID)
	if err != nil {
		return respondHabitError(c, err, "failed to load habit")
	}
	return c.JSON(buildHabitView(habit))
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.UpdateHabit(user.ID, habitID, habitInputFromPayload(payload), handler.now())
	if err != nil {
		return respondHabitError(c, err, "failed to update habit")
	}
	return c.JSON(buildHabitView(habit))
}

func (handler *Handler) ArchiveHabit(c *fiber.Ctx) error {
	return handler.setHabitArchived(c, true)
}

func (handler *Handler) UnarchiveHabit(c *fiber.Ctx) error {
	return handler.setHabitArchived(c, false)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	if err := handler.habitService.DeleteHabit(user.ID, habitID); err != nil {
		return respondHabitError(c, err, "failed to delete habit")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) setHabitArchived(c *fiber.Ctx, archived bool) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	if err := handler.habitService.SetArchived(user.ID, habitID, archived); err != nil {
		return respondHabitError(c, err, "failed to update habit")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func habitInputFromPayload(payload habitPayload) services.HabitInput {
	return services.HabitInput{
		Title:       payload.Title,
		Description: payload.Description,
		Color:       payload.Color,
		Frequency:   payload.Frequency,
		TargetCount: payload.TargetCount,
		Unit:        payload.Unit,
		Reminders:   payload.Reminders,
	}
}
