package models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

const (
	DefaultTargetCount = 1
	DefaultColor       = "#4F9DDE"
)

type Habit struct {
	ID               uint         `gorm:"primaryKey"`
	UserID           uint         `gorm:"not null;index"`
	Title            string       `gorm:"not null"`
	Description      string
	Color            string       `gorm:"not null;default:#4F9DDE"`
	Frequency        string       `gorm:"not null;default:daily"`
	TargetCount      int          `gorm:"not null;default:1"`
	Unit             string
	Reminders        []string     `gorm:"serializer:json"`
	IsActive         bool         `gorm:"not null;default:true"`
	IsArchived       bool         `gorm:"not null;default:false"`
	CurrentStreak    int          `gorm:"not null;default:0"`
	LongestStreak    int          `gorm:"not null;default:0"`
	TotalCompletions int          `gorm:"not null;default:0"`
	Version          uint         `gorm:"not null;default:1"`
	Entries          []HabitEntry `gorm:"foreignKey:HabitID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type HabitEntry struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"not null;uniqueIndex:uidx_habit_entry_day"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_entry_day"`
	Value     float64   `gorm:"not null;default:0"`
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
