package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/services"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseHabitIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid habit id")
	}
	return uint(parsed), nil
}

// respondHabitError maps service and repository failures onto HTTP statuses:
// unknown habit to 404, stale write to 409, rejected input to 400.
func respondHabitError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "habit not found")
	case errors.Is(err, db.ErrVersionConflict):
		return apiError(c, fiber.StatusConflict, "habit was modified concurrently, reload and retry")
	case services.IsValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
