package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/stridehq/stride/internal/models"
)

const (
	maxHabitTitleLength       = 120
	maxHabitDescriptionLength = 500
	maxHabitUnitLength        = 40
	maxEntryNoteLength        = 500
)

var (
	ErrHabitTitleRequired       = errors.New("habit title is required")
	ErrHabitTitleTooLong        = errors.New("habit title is too long")
	ErrHabitDescriptionTooLong  = errors.New("habit description is too long")
	ErrHabitUnitTooLong         = errors.New("habit unit is too long")
	ErrInvalidHabitFrequency    = errors.New("habit frequency must be daily, weekly or monthly")
	ErrInvalidHabitTargetCount  = errors.New("habit target count must be at least 1")
	ErrInvalidHabitColor        = errors.New("habit color must be a hex value like #4F9DDE")
	ErrInvalidHabitReminderTime = errors.New("habit reminder must be a HH:MM time of day")
	ErrEntryNoteTooLong         = errors.New("entry note is too long")
)

var habitColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
var reminderTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type HabitInput struct {
	Title       string
	Description string
	Color       string
	Frequency   string
	TargetCount int
	Unit        string
	Reminders   []string
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return true
	}
	return false
}

func ValidateHabitInput(input HabitInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return ErrHabitTitleRequired
	}
	if len(title) > maxHabitTitleLength {
		return ErrHabitTitleTooLong
	}
	if len(input.Description) > maxHabitDescriptionLength {
		return ErrHabitDescriptionTooLong
	}
	if len(input.Unit) > maxHabitUnitLength {
		return ErrHabitUnitTooLong
	}
	if !IsValidFrequency(input.Frequency) {
		return ErrInvalidHabitFrequency
	}
	if input.TargetCount < 1 {
		return ErrInvalidHabitTargetCount
	}
	if input.Color != "" && !habitColorPattern.MatchString(input.Color) {
		return ErrInvalidHabitColor
	}
	for _, reminder := range input.Reminders {
		if !reminderTimePattern.MatchString(reminder) {
			return ErrInvalidHabitReminderTime
		}
	}
	return nil
}

func ValidateEntryNote(note string) error {
	if len(note) > maxEntryNoteLength {
		return ErrEntryNoteTooLong
	}
	return nil
}

var validationErrors = []error{
	ErrInvalidDay,
	ErrNegativeEntryValue,
	ErrHabitTitleRequired,
	ErrHabitTitleTooLong,
	ErrHabitDescriptionTooLong,
	ErrHabitUnitTooLong,
	ErrInvalidHabitFrequency,
	ErrInvalidHabitTargetCount,
	ErrInvalidHabitColor,
	ErrInvalidHabitReminderTime,
	ErrEntryNoteTooLong,
}

// IsValidationError reports whether the error is caller-correctable input
// rejection rather than an infrastructure failure.
func IsValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
