// Package setting provides key/value access to the settings collection.
//
// Every read goes to the database; there is no in-process cache, so an
// admin update is visible to the very next request.
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when a setting key is empty.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetValue returns the stored string value for key, or fallback if the
// setting is absent or unreadable.
func GetValue(db *gorm.DB, key, fallback string) string {
	setting, err := Get(db, key)
	if err != nil {
		return fallback
	}

	return setting.Value
}

// All retrieves every setting as a key/value map.
func All(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// Update updates an existing setting in place. Settings rows are never
// created or deleted after seeding; updating an unknown key is a silent
// no-op.
func Update(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Model(&models.Setting{}).Where(keyQueryPattern, key).
		Update("value", value)

	return result.Error
}
