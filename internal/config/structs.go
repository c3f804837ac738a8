package config

import (
	"time"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Admin     Admin
	Uploads   Uploads
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	Session      Session // session settings
}

// Admin holds the single admin account credentials.
type Admin struct {
	Username string
	// PasswordHash is the argon2id hash of the configured password.
	// The plaintext is hashed at config load time and never retained.
	PasswordHash string
}

// Uploads holds the file upload settings.
type Uploads struct {
	Dir     string // destination directory for uploaded files
	MaxSize int    // upload size ceiling in bytes
}
