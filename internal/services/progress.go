package services

import (
	"time"

	"github.com/stridehq/stride/internal/models"
)

// TodayEntry returns the entry recorded for today, if any.
func TodayEntry(habit *models.Habit, today time.Time) (models.HabitEntry, bool) {
	return EntryForDay(habit, today)
}

// IsCompletedOnDay reports whether a qualifying entry exists for the day.
func IsCompletedOnDay(habit *models.Habit, day time.Time) bool {
	entry, found := EntryForDay(habit, day)
	return found && IsQualifying(habit, entry)
}

// CompletionRate is the share of recorded entries that met the target,
// rounded to whole percent. An empty history rates zero.
func CompletionRate(habit *models.Habit) int {
	if len(habit.Entries) == 0 {
		return 0
	}

	qualifying := 0
	for _, entry := range habit.Entries {
		if IsQualifying(habit, entry) {
			qualifying++
		}
	}
	return roundPercent(float64(qualifying) / float64(len(habit.Entries)))
}

// WeeklyProgress scales the qualifying days of the current calendar week
// (Sunday through Saturday) against the frequency's weekly target. The
// 0.25 target for monthly habits mirrors the historical computation even
// though it conflates week progress with a fraction of a month.
func WeeklyProgress(habit *models.Habit, today time.Time) int {
	weekStart, weekEnd := WeekWindow(today)
	completed := countQualifyingInWindow(habit, weekStart, weekEnd)
	return cappedPercent(float64(completed) / weeklyTargetPeriods(habit.Frequency))
}

// MonthlyProgress is the analogous scan over the current calendar month.
func MonthlyProgress(habit *models.Habit, today time.Time) int {
	monthStart, monthEnd := MonthWindow(today)
	completed := countQualifyingInWindow(habit, monthStart, monthEnd)
	return cappedPercent(float64(completed) / monthlyTargetPeriods(habit.Frequency, today))
}

// EntriesInRange returns the entries whose date falls within [from, to]
// inclusive, ascending by date.
func EntriesInRange(habit *models.Habit, from time.Time, to time.Time) []models.HabitEntry {
	fromKey := DayKey(from)
	toKey := DayKey(to)

	matched := make([]models.HabitEntry, 0, len(habit.Entries))
	for _, entry := range NormalizeEntries(habit.Entries) {
		key := DayKey(entry.Date)
		if key >= fromKey && key <= toKey {
			matched = append(matched, entry)
		}
	}
	return matched
}

func weeklyTargetPeriods(frequency string) float64 {
	switch frequency {
	case models.FrequencyWeekly:
		return 1
	case models.FrequencyMonthly:
		return 0.25
	default:
		return 7
	}
}

func monthlyTargetPeriods(frequency string, today time.Time) float64 {
	daysInMonth := DaysInMonth(today)
	switch frequency {
	case models.FrequencyWeekly:
		return float64((daysInMonth + 6) / 7)
	case models.FrequencyMonthly:
		return 1
	default:
		return float64(daysInMonth)
	}
}

func countQualifyingInWindow(habit *models.Habit, from time.Time, to time.Time) int {
	count := 0
	for _, entry := range EntriesInRange(habit, from, to) {
		if IsQualifying(habit, entry) {
			count++
		}
	}
	return count
}

func roundPercent(fraction float64) int {
	return int(fraction*100 + 0.5)
}

func cappedPercent(fraction float64) int {
	percent := roundPercent(fraction)
	if percent > 100 {
		return 100
	}
	return percent
}
