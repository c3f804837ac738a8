// Package experience provides read access to the experience collection.
// Experience rows are seeded at startup and have no admin CRUD routes.
package experience

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// List retrieves all experience entries in display order.
func List(db *gorm.DB) ([]models.Experience, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.Experience
	result := db.Order("order_num, id").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
