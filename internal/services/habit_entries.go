package services

import (
	"errors"
	"sort"
	"time"

	"github.com/stridehq/stride/internal/models"
)

var ErrNegativeEntryValue = errors.New("entry value must not be negative")

// AddEntry records progress for a calendar day. An existing entry for the
// same day is overwritten (last write wins); otherwise a new entry is
// created. Entries are renormalized and derived counters recomputed before
// the habit is considered safe to persist.
func AddEntry(habit *models.Habit, day time.Time, value float64, note string, now time.Time) error {
	if value < 0 {
		return ErrNegativeEntryValue
	}

	day = DateOnly(day)
	if existing, found := EntryForDay(habit, day); found {
		existing.Value = value
		existing.Note = note
		existing.UpdatedAt = now
		replaceEntryForDay(habit, existing)
	} else {
		habit.Entries = append(habit.Entries, models.HabitEntry{
			HabitID:   habit.ID,
			Date:      day,
			Value:     value,
			Note:      note,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	RecomputeDerived(habit, now)
	return nil
}

// UpdateEntry adjusts the entry for a calendar day. A missing entry is not
// an error: the call falls through to AddEntry.
func UpdateEntry(habit *models.Habit, day time.Time, value float64, note string, now time.Time) error {
	return AddEntry(habit, day, value, note, now)
}

// RemoveEntry deletes the entry for a calendar day if one exists. Removing
// an absent day is a no-op aside from recomputation. Deleting a day out of
// the middle of a run must split it into shorter runs, so the longest
// streak is rebuilt from the surviving history rather than ratcheted.
func RemoveEntry(habit *models.Habit, day time.Time, now time.Time) {
	kept := make([]models.HabitEntry, 0, len(habit.Entries))
	for _, entry := range habit.Entries {
		if SameDay(entry.Date, day) {
			continue
		}
		kept = append(kept, entry)
	}
	habit.Entries = kept

	habit.LongestStreak = 0
	RecomputeDerived(habit, now)
}

// EntryForDay returns the entry whose date falls on the given calendar day.
func EntryForDay(habit *models.Habit, day time.Time) (models.HabitEntry, bool) {
	for _, entry := range habit.Entries {
		if SameDay(entry.Date, day) {
			return entry, true
		}
	}
	return models.HabitEntry{}, false
}

// NormalizeEntries deduplicates entries by calendar day (last write wins)
// and sorts them ascending by date.
func NormalizeEntries(entries []models.HabitEntry) []models.HabitEntry {
	byDay := make(map[string]models.HabitEntry, len(entries))
	for _, entry := range entries {
		byDay[DayKey(entry.Date)] = entry
	}

	normalized := make([]models.HabitEntry, 0, len(byDay))
	for _, entry := range byDay {
		normalized = append(normalized, entry)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Date.Before(normalized[j].Date)
	})
	return normalized
}

// IsQualifying reports whether an entry meets the habit's per-period target.
func IsQualifying(habit *models.Habit, entry models.HabitEntry) bool {
	return entry.Value >= float64(habit.TargetCount)
}

// RecomputeDerived reconciles the derived counters with the entry list.
// The current streak and completion count are always a full recompute over
// the history. The longest streak only ratchets upward here: an overwrite
// that stops a day qualifying must not erase a record already earned.
// Removal is the one mutation that shrinks history, so RemoveEntry resets
// the record before calling in and the rescan rebuilds it from scratch.
func RecomputeDerived(habit *models.Habit, now time.Time) {
	habit.Entries = NormalizeEntries(habit.Entries)

	completions := 0
	for _, entry := range habit.Entries {
		if IsQualifying(habit, entry) {
			completions++
		}
	}
	habit.TotalCompletions = completions

	today := DateOnly(now)
	if rescanned := LongestStreak(habit); rescanned > habit.LongestStreak {
		habit.LongestStreak = rescanned
	}
	habit.CurrentStreak = CurrentStreak(habit, today)
	if habit.CurrentStreak > habit.LongestStreak {
		habit.LongestStreak = habit.CurrentStreak
	}
}

func replaceEntryForDay(habit *models.Habit, updated models.HabitEntry) {
	key := DayKey(updated.Date)
	for index := range habit.Entries {
		if DayKey(habit.Entries[index].Date) == key {
			habit.Entries[index] = updated
			return
		}
	}
}
