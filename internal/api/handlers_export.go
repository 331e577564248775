package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	from, to, rangeErr := parseOptionalExportRange(c)
	if rangeErr != "" {
		return apiError(c, fiber.StatusBadRequest, rangeErr)
	}

	habit, rows, err := handler.exportService.LoadEntriesForRange(user.ID, habitID, from, to)
	if err != nil {
		return respondHabitError(c, err, "failed to load export data")
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(services.BuildCSVRecord(row)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", exportFileName(habit.Title, "csv")))
	return c.Send(buffer.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseHabitIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	from, to, rangeErr := parseOptionalExportRange(c)
	if rangeErr != "" {
		return apiError(c, fiber.StatusBadRequest, rangeErr)
	}

	habit, rows, err := handler.exportService.LoadEntriesForRange(user.ID, habitID, from, to)
	if err != nil {
		return respondHabitError(c, err, "failed to load export data")
	}

	return c.JSON(fiber.Map{
		"summary": handler.exportService.BuildSummary(habit, rows),
		"entries": rows,
	})
}

func parseOptionalExportRange(c *fiber.Ctx) (*time.Time, *time.Time, string) {
	var from *time.Time
	var to *time.Time

	if raw := c.Query("from"); raw != "" {
		parsed, err := services.ParseDay(raw)
		if err != nil {
			return nil, nil, "invalid from date"
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := services.ParseDay(raw)
		if err != nil {
			return nil, nil, "invalid to date"
		}
		to = &parsed
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, "invalid range"
	}
	return from, to, ""
}

func exportFileName(title string, extension string) string {
	sanitized := make([]rune, 0, len(title))
	for _, character := range title {
		switch {
		case character >= 'a' && character <= 'z',
			character >= 'A' && character <= 'Z',
			character >= '0' && character <= '9':
			sanitized = append(sanitized, character)
		case character == ' ', character == '-', character == '_':
			sanitized = append(sanitized, '-')
		}
	}
	if len(sanitized) == 0 {
		return "habit-export." + extension
	}
	return fmt.Sprintf("%s-export.%s", string(sanitized), extension)
}
