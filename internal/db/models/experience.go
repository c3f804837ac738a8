package models

// Experience represents a work experience entry.
// StartDate and EndDate are stored as free-text strings, not validated.
type Experience struct {
	ID              uint   `gorm:"primaryKey"`
	Organization    string `gorm:"size:255;not null"`
	Role            string `gorm:"size:255"`
	Description     string `gorm:"not null"`
	CertificatePath string `gorm:"column:certificate_path"`
	StartDate       string `gorm:"column:start_date"`
	EndDate         string `gorm:"column:end_date"`
	OrderNum        int    `gorm:"column:order_num;default:0"`
}

// TableName keeps the singular table name used by the schema.
func (Experience) TableName() string {
	return "experience"
}
