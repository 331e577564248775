package db

import (
	"errors"

	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a save targets a habit whose version
// advanced since it was loaded. The caller reloads and retries.
var ErrVersionConflict = errors.New("habit was modified concurrently")

var habitSaveColumns = []string{
	"title",
	"description",
	"color",
	"frequency",
	"target_count",
	"unit",
	"reminders",
	"is_active",
	"is_archived",
	"current_streak",
	"longest_streak",
	"total_completions",
	"version",
	"updated_at",
}

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, error) {
	var habit models.Habit
	err := repo.database.
		Preload("Entries", func(query *gorm.DB) *gorm.DB {
			return query.Order("date ASC, id ASC")
		}).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) ListByUser(userID uint, includeArchived bool) ([]models.Habit, error) {
	query := repo.database.
		Preload("Entries", func(query *gorm.DB) *gorm.DB {
			return query.Order("date ASC, id ASC")
		}).
		Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}

	habits := make([]models.Habit, 0)
	if err := query.Order("created_at ASC, id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// Create inserts the habit with an explicit starting version so the loaded
// aggregate and the stored row agree for the first versioned save.
func (repo *HabitRepository) Create(habit *models.Habit) error {
	if habit.Version == 0 {
		habit.Version = 1
	}
	return repo.database.Create(habit).Error
}

// SaveVersioned writes the habit row and its entry set in one transaction.
// The update is guarded by the version the habit was loaded with; a zero
// row count means another writer got there first.
func (repo *HabitRepository) SaveVersioned(habit *models.Habit) error {
	loadedVersion := habit.Version
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		updated := *habit
		updated.Version = loadedVersion + 1

		result := tx.Model(&models.Habit{}).
			Where("id = ? AND version = ?", habit.ID, loadedVersion).
			Select(habitSaveColumns).
			Updates(updated)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}

		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.HabitEntry{}).Error; err != nil {
			return err
		}
		if len(habit.Entries) > 0 {
			entries := make([]models.HabitEntry, len(habit.Entries))
			copy(entries, habit.Entries)
			for index := range entries {
				entries[index].ID = 0
				entries[index].HabitID = habit.ID
			}
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
			habit.Entries = entries
		}
		return nil
	})
	if err != nil {
		return err
	}

	habit.Version = loadedVersion + 1
	return nil
}

func (repo *HabitRepository) SetArchived(habitID uint, userID uint, archived bool) error {
	result := repo.database.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", habitID, userID).
		Updates(map[string]any{
			"is_archived": archived,
			"is_active":   !archived,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *HabitRepository) DeleteByIDForUser(habitID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("habit_id = ?", habitID).Delete(&models.HabitEntry{}).Error
	})
}
