// Package certification provides CRUD operations for the certifications collection.
package certification

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// List retrieves all certifications in display order.
func List(db *gorm.DB) ([]models.Certification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var certs []models.Certification
	result := db.Order("order_num, id").Find(&certs)
	if result.Error != nil {
		return nil, result.Error
	}

	return certs, nil
}

// Create inserts a new certification. OrderNum defaults to 0.
func Create(db *gorm.DB, title, issuer, dateEarned string) (*models.Certification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	cert := &models.Certification{
		Title:      title,
		Issuer:     issuer,
		DateEarned: dateEarned,
	}

	result := db.Create(cert)
	if result.Error != nil {
		return nil, result.Error
	}

	return cert, nil
}

// Update performs a full-row update by ID.
// Updating a nonexistent ID is a silent no-op.
func Update(db *gorm.DB, id uint, title, issuer, dateEarned string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Certification{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "issuer": issuer, "date_earned": dateEarned})

	return result.Error
}

// Delete removes a certification by ID.
// Deleting a nonexistent ID is a silent no-op.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.Certification{}, id).Error
}
