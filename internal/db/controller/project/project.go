// Package project provides CRUD operations for the projects collection.
package project

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// List retrieves all projects in display order.
func List(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	result := db.Order("order_num, id").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

// Create inserts a new project. OrderNum defaults to 0.
func Create(db *gorm.DB, p *models.Project) error {
	if db == nil {
		return ErrDBNil
	}
	if p == nil {
		return errors.New("project is nil")
	}

	return db.Create(p).Error
}

// Update performs a full-row update by ID, including the image path.
// Updating a nonexistent ID is a silent no-op.
func Update(db *gorm.DB, id uint, p *models.Project) error {
	if db == nil {
		return ErrDBNil
	}
	if p == nil {
		return errors.New("project is nil")
	}

	result := db.Model(&models.Project{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":         p.Title,
			"description":   p.Description,
			"tools":         p.Tools,
			"results":       p.Results,
			"github_link":   p.GithubLink,
			"linkedin_link": p.LinkedinLink,
			"image_path":    p.ImagePath,
		})

	return result.Error
}

// Delete removes a project by ID. The referenced image file, if any,
// is left in place on disk.
// Deleting a nonexistent ID is a silent no-op.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.Project{}, id).Error
}
