package services

import (
	"errors"
	"regexp"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid day format")

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDay parses a strict YYYY-MM-DD calendar day into a midnight UTC time.
func ParseDay(value string) (time.Time, error) {
	if !dayPattern.MatchString(value) {
		return time.Time{}, ErrInvalidDay
	}
	day, err := time.ParseInLocation(DayLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return day, nil
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func DayKey(value time.Time) string {
	return value.Format(DayLayout)
}

func SameDay(a time.Time, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// DaysBetween returns the whole calendar days from a to b, positive when b is later.
func DaysBetween(a time.Time, b time.Time) int {
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// WeekWindow returns the Sunday and Saturday of the calendar week containing day.
func WeekWindow(day time.Time) (time.Time, time.Time) {
	start := DateOnly(day).AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// MonthWindow returns the first and last day of the calendar month containing day.
func MonthWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 1, -1)
}

func DaysInMonth(day time.Time) int {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 1, -1).Day()
}
