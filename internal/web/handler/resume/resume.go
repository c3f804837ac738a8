// Package resume streams the uploaded resume as a download.
package resume

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/setting"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

const (
	// Path is the path of the resume download endpoint.
	Path = "/download-resume"

	// DownloadName is the filename offered to the browser.
	DownloadName = "resume.pdf"

	defaultResumePath = "uploads/resume.pdf"
)

// Service is the resume download handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the resume download handler.
var Handler = Service{}

// Init initializes the resume download handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get streams the file at the configured resume path as an attachment,
// or redirects home with an error notice if the file is absent.
func (s *Service) Get(c *fiber.Ctx) error {
	resumePath := setting.GetValue(s.db, "resume_path", defaultResumePath)

	if _, err := os.Stat(resumePath); err != nil {
		flash.Set(c, flash.LevelError, "Resume file not found.")

		return c.Redirect(handler.RootPath)
	}

	return c.Download(resumePath, DownloadName)
}
