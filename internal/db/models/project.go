package models

// Project represents a portfolio project.
// Tools and Results are free-text, rendered as-is.
// ImagePath references an uploaded file or is empty.
type Project struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"not null"`
	Tools        string
	Results      string
	GithubLink   string `gorm:"column:github_link"`
	LinkedinLink string `gorm:"column:linkedin_link"`
	ImagePath    string `gorm:"column:image_path"`
	OrderNum     int    `gorm:"column:order_num;default:0"`
}
