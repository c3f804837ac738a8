package models

// Certification represents an earned certification.
// DateEarned is free-text.
type Certification struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:255;not null"`
	Issuer     string `gorm:"size:255"`
	DateEarned string `gorm:"column:date_earned"`
	OrderNum   int    `gorm:"column:order_num;default:0"`
}
