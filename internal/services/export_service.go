package services

import (
	"strconv"
	"time"

	"github.com/stridehq/stride/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Value",
	"Target",
	"Unit",
	"Completed",
	"Note",
}

type ExportHabitReader interface {
	FindByIDForUser(habitID uint, userID uint) (models.Habit, error)
}

type ExportService struct {
	habits ExportHabitReader
}

type ExportSummary struct {
	Habit        string `json:"habit"`
	Frequency    string `json:"frequency"`
	TotalEntries int    `json:"total_entries"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	HasData      bool   `json:"has_data"`
}

type ExportEntry struct {
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Target    int     `json:"target"`
	Unit      string  `json:"unit"`
	Completed bool    `json:"completed"`
	Note      string  `json:"note"`
}

func NewExportService(habits ExportHabitReader) *ExportService {
	return &ExportService{habits: habits}
}

// LoadEntriesForRange returns the habit and its export rows. A nil bound
// leaves that side of the range open.
func (service *ExportService) LoadEntriesForRange(userID uint, habitID uint, from *time.Time, to *time.Time) (models.Habit, []ExportEntry, error) {
	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, nil, err
	}

	entries := NormalizeEntries(habit.Entries)
	rows := make([]ExportEntry, 0, len(entries))
	for _, entry := range entries {
		if from != nil && DayKey(entry.Date) < DayKey(*from) {
			continue
		}
		if to != nil && DayKey(entry.Date) > DayKey(*to) {
			continue
		}
		rows = append(rows, ExportEntry{
			Date:      DayKey(entry.Date),
			Value:     entry.Value,
			Target:    habit.TargetCount,
			Unit:      habit.Unit,
			Completed: IsQualifying(&habit, entry),
			Note:      entry.Note,
		})
	}
	return habit, rows, nil
}

func (service *ExportService) BuildSummary(habit models.Habit, rows []ExportEntry) ExportSummary {
	summary := ExportSummary{
		Habit:        habit.Title,
		Frequency:    habit.Frequency,
		TotalEntries: len(rows),
		HasData:      len(rows) > 0,
	}
	if len(rows) > 0 {
		summary.DateFrom = rows[0].Date
		summary.DateTo = rows[len(rows)-1].Date
	}
	return summary
}

func BuildCSVRecord(row ExportEntry) []string {
	return []string{
		row.Date,
		strconv.FormatFloat(row.Value, 'f', -1, 64),
		strconv.Itoa(row.Target),
		row.Unit,
		strconv.FormatBool(row.Completed),
		row.Note,
	}
}
