// Package message provides operations for the contact messages collection.
// Messages are append-only; there is no delete or read-state operation.
package message

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Create inserts a new message with a server-assigned timestamp.
func Create(db *gorm.DB, name, email, body string) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	msg := &models.Message{
		Name:    name,
		Email:   email,
		Message: body,
	}

	result := db.Create(msg)
	if result.Error != nil {
		return nil, result.Error
	}

	return msg, nil
}

// ListRecent retrieves the most recent messages, newest first.
func ListRecent(db *gorm.DB, limit int) ([]models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var messages []models.Message
	result := db.Order("submitted_at DESC, id DESC").Limit(limit).Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}
