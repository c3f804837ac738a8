package models

// Setting represents a single key/value pair of editable site configuration.
// Settings rows are seeded once and afterwards only updated in place.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"not null"`
}
