package services

import (
	"time"

	"github.com/stridehq/stride/internal/models"
)

type StatsHabitReader interface {
	FindByIDForUser(habitID uint, userID uint) (models.Habit, error)
	ListByUser(userID uint, includeArchived bool) ([]models.Habit, error)
}

type StatsService struct {
	habits StatsHabitReader
}

type HabitStats struct {
	CurrentStreak    int                `json:"current_streak"`
	LongestStreak    int                `json:"longest_streak"`
	TotalCompletions int                `json:"total_completions"`
	TotalEntries     int                `json:"total_entries"`
	CompletionRate   int                `json:"completion_rate"`
	WeeklyProgress   int                `json:"weekly_progress"`
	MonthlyProgress  int                `json:"monthly_progress"`
	CompletedToday   bool               `json:"completed_today"`
	TodayEntry       *models.HabitEntry `json:"today_entry,omitempty"`
}

type HabitOverview struct {
	HabitID        uint   `json:"habit_id"`
	Title          string `json:"title"`
	Color          string `json:"color"`
	Frequency      string `json:"frequency"`
	TargetCount    int    `json:"target_count"`
	Unit           string `json:"unit"`
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	CompletionRate int    `json:"completion_rate"`
	WeeklyProgress int    `json:"weekly_progress"`
	CompletedToday bool   `json:"completed_today"`
}

func NewStatsService(habits StatsHabitReader) *StatsService {
	return &StatsService{habits: habits}
}

// BuildHabitStats derives the read-only projections for one habit. It never
// mutates the habit; streak counters are read as persisted except for the
// current streak, which is re-evaluated against the supplied today so a
// stale aggregate still reports an accurate value.
func (service *StatsService) BuildHabitStats(habit *models.Habit, today time.Time) HabitStats {
	stats := HabitStats{
		CurrentStreak:    CurrentStreak(habit, today),
		LongestStreak:    habit.LongestStreak,
		TotalCompletions: habit.TotalCompletions,
		TotalEntries:     len(habit.Entries),
		CompletionRate:   CompletionRate(habit),
		WeeklyProgress:   WeeklyProgress(habit, today),
		MonthlyProgress:  MonthlyProgress(habit, today),
		CompletedToday:   IsCompletedOnDay(habit, today),
	}
	if entry, found := TodayEntry(habit, today); found {
		stats.TodayEntry = &entry
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return stats
}

func (service *StatsService) BuildHabitStatsByID(userID uint, habitID uint, today time.Time) (HabitStats, error) {
	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return HabitStats{}, err
	}
	return service.BuildHabitStats(&habit, today), nil
}

// BuildOverview summarizes every active habit for the dashboard. Archived
// habits keep their entries but are excluded here.
func (service *StatsService) BuildOverview(userID uint, today time.Time) ([]HabitOverview, error) {
	habits, err := service.habits.ListByUser(userID, false)
	if err != nil {
		return nil, err
	}

	overview := make([]HabitOverview, 0, len(habits))
	for index := range habits {
		habit := &habits[index]
		stats := service.BuildHabitStats(habit, today)
		overview = append(overview, HabitOverview{
			HabitID:        habit.ID,
			Title:          habit.Title,
			Color:          habit.Color,
			Frequency:      habit.Frequency,
			TargetCount:    habit.TargetCount,
			Unit:           habit.Unit,
			CurrentStreak:  stats.CurrentStreak,
			LongestStreak:  stats.LongestStreak,
			CompletionRate: stats.CompletionRate,
			WeeklyProgress: stats.WeeklyProgress,
			CompletedToday: stats.CompletedToday,
		})
	}
	return overview, nil
}
