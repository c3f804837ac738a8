// Package skill provides CRUD operations for the skills collection.
package skill

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// List retrieves all skills ordered by category, then display order.
func List(db *gorm.DB) ([]models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var skills []models.Skill
	result := db.Order("category, order_num, id").Find(&skills)
	if result.Error != nil {
		return nil, result.Error
	}

	return skills, nil
}

// Create inserts a new skill. OrderNum defaults to 0.
func Create(db *gorm.DB, category, name string) (*models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	skill := &models.Skill{
		Category: category,
		Name:     name,
	}

	result := db.Create(skill)
	if result.Error != nil {
		return nil, result.Error
	}

	return skill, nil
}

// Update performs a full-row update by ID.
// Updating a nonexistent ID is a silent no-op.
func Update(db *gorm.DB, id uint, category, name string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Skill{}).Where("id = ?", id).
		Updates(map[string]interface{}{"category": category, "name": name})

	return result.Error
}

// Delete removes a skill by ID.
// Deleting a nonexistent ID is a silent no-op.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.Skill{}, id).Error
}

// GroupByCategory groups skill names by category, preserving the
// category order of the given slice (which List returns sorted).
func GroupByCategory(skills []models.Skill) (categories []string, grouped map[string][]string) {
	grouped = make(map[string][]string)

	for _, s := range skills {
		if _, ok := grouped[s.Category]; !ok {
			categories = append(categories, s.Category)
		}

		grouped[s.Category] = append(grouped[s.Category], s.Name)
	}

	return categories, grouped
}
