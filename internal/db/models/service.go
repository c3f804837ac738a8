package models

// Service represents a service offered on the portfolio page.
type Service struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"not null"`
	// Icon is a short string, usually an emoji.
	Icon     string `gorm:"size:16"`
	OrderNum int    `gorm:"column:order_num;default:0"`
}
