package config

// DB holds the database configuration settings.
type DB struct {
	// Path is the location of the sqlite database file.
	Path string
}
