package services

import (
	"strings"
	"time"

	"github.com/stridehq/stride/internal/models"
)

type HabitRepository interface {
	FindByIDForUser(habitID uint, userID uint) (models.Habit, error)
	ListByUser(userID uint, includeArchived bool) ([]models.Habit, error)
	Create(habit *models.Habit) error
	SaveVersioned(habit *models.Habit) error
	SetArchived(habitID uint, userID uint, archived bool) error
	DeleteByIDForUser(habitID uint, userID uint) error
}

type HabitService struct {
	habits HabitRepository
	locks  *habitLocks
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{
		habits: habits,
		locks:  newHabitLocks(),
	}
}

func (service *HabitService) CreateHabit(userID uint, input HabitInput, now time.Time) (models.Habit, error) {
	if err := ValidateHabitInput(input); err != nil {
		return models.Habit{}, err
	}

	color := input.Color
	if color == "" {
		color = models.DefaultColor
	}
	reminders := input.Reminders
	if reminders == nil {
		reminders = []string{}
	}

	habit := models.Habit{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Color:       color,
		Frequency:   input.Frequency,
		TargetCount: input.TargetCount,
		Unit:        input.Unit,
		Reminders:   reminders,
		IsActive:    true,
		Entries:     []models.HabitEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) GetHabit(userID uint, habitID uint) (models.Habit, error) {
	return service.habits.FindByIDForUser(habitID, userID)
}

func (service *HabitService) ListHabits(userID uint, includeArchived bool) ([]models.Habit, error) {
	return service.habits.ListByUser(userID, includeArchived)
}

// UpdateHabit applies metadata changes. A target-count change re-qualifies
// the whole history, so derived counters are recomputed before saving.
func (service *HabitService) UpdateHabit(userID uint, habitID uint, input HabitInput, now time.Time) (models.Habit, error) {
	if err := ValidateHabitInput(input); err != nil {
		return models.Habit{}, err
	}

	release := service.locks.acquire(habitID)
	defer release()

	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}

	habit.Title = strings.TrimSpace(input.Title)
	habit.Description = input.Description
	if input.Color != "" {
		habit.Color = input.Color
	}
	habit.Frequency = input.Frequency
	habit.TargetCount = input.TargetCount
	habit.Unit = input.Unit
	if input.Reminders != nil {
		habit.Reminders = input.Reminders
	}
	habit.UpdatedAt = now

	// A new frequency or target requalifies every historical entry, so the
	// longest streak is rebuilt from scratch instead of carried over.
	habit.LongestStreak = 0
	RecomputeDerived(&habit, now)
	if err := service.habits.SaveVersioned(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// LogEntry records or overwrites the entry for a calendar day and persists
// the recomputed aggregate under the per-habit lock.
func (service *HabitService) LogEntry(userID uint, habitID uint, day time.Time, value float64, note string, now time.Time) (models.Habit, error) {
	if err := ValidateEntryNote(note); err != nil {
		return models.Habit{}, err
	}

	release := service.locks.acquire(habitID)
	defer release()

	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if err := AddEntry(&habit, day, value, note, now); err != nil {
		return models.Habit{}, err
	}
	habit.UpdatedAt = now
	if err := service.habits.SaveVersioned(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// AmendEntry updates the entry for a day, creating it when absent.
func (service *HabitService) AmendEntry(userID uint, habitID uint, day time.Time, value float64, note string, now time.Time) (models.Habit, error) {
	if err := ValidateEntryNote(note); err != nil {
		return models.Habit{}, err
	}

	release := service.locks.acquire(habitID)
	defer release()

	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if err := UpdateEntry(&habit, day, value, note, now); err != nil {
		return models.Habit{}, err
	}
	habit.UpdatedAt = now
	if err := service.habits.SaveVersioned(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// DeleteEntry removes the entry for a day; deleting an absent day only
// triggers recomputation.
func (service *HabitService) DeleteEntry(userID uint, habitID uint, day time.Time, now time.Time) (models.Habit, error) {
	release := service.locks.acquire(habitID)
	defer release()

	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	RemoveEntry(&habit, day, now)
	habit.UpdatedAt = now
	if err := service.habits.SaveVersioned(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) EntriesBetween(userID uint, habitID uint, from time.Time, to time.Time) ([]models.HabitEntry, error) {
	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return nil, err
	}
	return EntriesInRange(&habit, from, to), nil
}

func (service *HabitService) SetArchived(userID uint, habitID uint, archived bool) error {
	return service.habits.SetArchived(habitID, userID, archived)
}

func (service *HabitService) DeleteHabit(userID uint, habitID uint) error {
	return service.habits.DeleteByIDForUser(habitID, userID)
}
