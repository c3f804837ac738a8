// Package service provides CRUD operations for the services collection.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// List retrieves all services in display order.
func List(db *gorm.DB) ([]models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.Service
	result := db.Order("order_num, id").Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

// Create inserts a new service. OrderNum defaults to 0.
func Create(db *gorm.DB, title, description, icon string) (*models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	svc := &models.Service{
		Title:       title,
		Description: description,
		Icon:        icon,
	}

	result := db.Create(svc)
	if result.Error != nil {
		return nil, result.Error
	}

	return svc, nil
}

// Update performs a full-row update by ID.
// Updating a nonexistent ID is a silent no-op.
func Update(db *gorm.DB, id uint, title, description, icon string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Service{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description, "icon": icon})

	return result.Error
}

// Delete removes a service by ID.
// Deleting a nonexistent ID is a silent no-op.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.Service{}, id).Error
}
