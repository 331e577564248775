package api

import (
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/services"
)

type entryView struct {
	Date      string    `json:"date"`
	Value     float64   `json:"value"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type habitView struct {
	ID               uint        `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	Color            string      `json:"color"`
	Frequency        string      `json:"frequency"`
	TargetCount      int         `json:"target_count"`
	Unit             string      `json:"unit,omitempty"`
	Reminders        []string    `json:"reminders"`
	IsActive         bool        `json:"is_active"`
	IsArchived       bool        `json:"is_archived"`
	CurrentStreak    int         `json:"current_streak"`
	LongestStreak    int         `json:"longest_streak"`
	TotalCompletions int         `json:"total_completions"`
	Version          uint        `json:"version"`
	Entries          []entryView `json:"entries"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func buildEntryView(entry models.HabitEntry) entryView {
	return entryView{
		Date:      services.DayKey(entry.Date),
		Value:     entry.Value,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func buildEntryViews(entries []models.HabitEntry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, buildEntryView(entry))
	}
	return views
}

func buildHabitView(habit models.Habit) habitView {
	reminders := habit.Reminders
	if reminders == nil {
		reminders = []string{}
	}
	return habitView{
		ID:               habit.ID,
		Title:            habit.Title,
		Description:      habit.Description,
		Color:            habit.Color,
		Frequency:        habit.Frequency,
		TargetCount:      habit.TargetCount,
		Unit:             habit.Unit,
		Reminders:        reminders,
		IsActive:         habit.IsActive,
		IsArchived:       habit.IsArchived,
		CurrentStreak:    habit.CurrentStreak,
		LongestStreak:    habit.LongestStreak,
		TotalCompletions: habit.TotalCompletions,
		Version:          habit.Version,
		Entries:          buildEntryViews(habit.Entries),
		CreatedAt:        habit.CreatedAt,
		UpdatedAt:        habit.UpdatedAt,
	}
}
