package services

import (
	"time"

	"github.com/stridehq/stride/internal/models"
)

// StreakGapDays is the maximum distance in days between two qualifying
// entries for them to belong to the same streak. Monthly habits use a fixed
// 31-day gap rather than true calendar-month boundaries.
func StreakGapDays(frequency string) int {
	switch frequency {
	case models.FrequencyWeekly:
		return 7
	case models.FrequencyMonthly:
		return 31
	default:
		return 1
	}
}

// StreakStepDays is the backward step used when counting the current streak
// from today. Monthly habits step 30 days, one short of the gap used by the
// historical scan.
func StreakStepDays(frequency string) int {
	switch frequency {
	case models.FrequencyWeekly:
		return 7
	case models.FrequencyMonthly:
		return 30
	default:
		return 1
	}
}

// QualifyingDays returns the ascending calendar days whose entries meet the
// habit's target.
func QualifyingDays(habit *models.Habit) []time.Time {
	days := make([]time.Time, 0, len(habit.Entries))
	for _, entry := range habit.Entries {
		if IsQualifying(habit, entry) {
			days = append(days, DateOnly(entry.Date))
		}
	}
	return days
}

// LongestStreak scans the full qualifying history once and returns the
// longest run of entries whose consecutive gaps stay within the cadence gap.
func LongestStreak(habit *models.Habit) int {
	days := QualifyingDays(habit)
	if len(days) == 0 {
		return 0
	}

	gap := StreakGapDays(habit.Frequency)
	longest := 1
	run := 1
	for index := 1; index < len(days); index++ {
		if DaysBetween(days[index-1], days[index]) <= gap {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CurrentStreak counts consecutive qualifying periods ending today, walking
// backward from today in cadence steps. A day without a qualifying entry at
// the stepped-back date ends the streak; no qualifying entry today means no
// current streak at all.
func CurrentStreak(habit *models.Habit, today time.Time) int {
	qualifying := make(map[string]bool, len(habit.Entries))
	for _, entry := range habit.Entries {
		if IsQualifying(habit, entry) {
			qualifying[DayKey(entry.Date)] = true
		}
	}

	today = DateOnly(today)
	if !qualifying[DayKey(today)] {
		return 0
	}

	step := StreakStepDays(habit.Frequency)
	streak := 1
	for day := today.AddDate(0, 0, -step); qualifying[DayKey(day)]; day = day.AddDate(0, 0, -step) {
		streak++
	}
	return streak
}
