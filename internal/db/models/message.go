package models

import (
	"time"
)

// Message represents an inbound contact form message.
// Messages are append-only; no handler deletes them.
type Message struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	Email       string    `gorm:"size:255;not null"`
	Message     string    `gorm:"not null"`
	SubmittedAt time.Time `gorm:"column:submitted_at;autoCreateTime"`
	IsRead      bool      `gorm:"column:is_read;default:false"`
}
