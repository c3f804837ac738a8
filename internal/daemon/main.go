// Package daemon wires the database, session store, and web service
// together into the running application.
package daemon

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	sqlite3storage "github.com/gofiber/storage/sqlite3/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Skill{},
		&models.Service{},
		&models.Project{},
		&models.Experience{},
		&models.Certification{},
		&models.Message{},
		&models.Setting{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	if err = os.MkdirAll(cfg.Uploads.Dir, 0o750); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Uploads.Dir).Msg("failed to create uploads directory")
	}

	// Initialize fiber session store
	sessionStorage := sqlite3storage.New(sqlite3storage.Config{
		Database: cfg.DB.Path,
		Table:    "sessions",
	})

	session.Init(sessionStorage)

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}
