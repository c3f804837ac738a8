// Package models contains database model definitions.
package models

// Skill represents a single skill, grouped by category for display.
type Skill struct {
	ID       uint   `gorm:"primaryKey"`
	Category string `gorm:"size:100;not null"`
	Name     string `gorm:"size:100;not null"`
	OrderNum int    `gorm:"column:order_num;default:0"`
}
