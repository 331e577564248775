package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetHabitStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	stats, err := handler.statsService.BuildHabitStatsByID(user.ID, habitID, handler.today())
	if err != nil {
		return respondHabitError(c, err, "failed to build stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) GetOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.statsService.BuildOverview(user.ID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return c.JSON(overview)
}
