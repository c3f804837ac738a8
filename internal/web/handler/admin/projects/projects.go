// Package projects implements the admin CRUD routes for projects,
// including the optional project image upload.
package projects

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/project"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/upload"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

// BasePath is the base path of the projects admin routes.
const BasePath = handler.AdminPath + "/projects"

// Service is the projects admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the projects admin handler.
var Handler = Service{}

// Init initializes the projects admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Post(BasePath+"/add", s.Add)
	app.Post(BasePath+"/edit/:id", s.Edit)
	app.Get(BasePath+"/delete/:id", s.Delete)

	return nil
}

// formProject builds a project from the submitted form fields.
func formProject(c *fiber.Ctx) models.Project {
	return models.Project{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Tools:        c.FormValue("tools"),
		Results:      c.FormValue("results"),
		GithubLink:   c.FormValue("github_link"),
		LinkedinLink: c.FormValue("linkedin_link"),
	}
}

// saveImage stores an uploaded project image and returns its path.
// A missing file or a disallowed extension returns ok=false with no
// error surfaced; the caller keeps the previous path.
func (s *Service) saveImage(c *fiber.Ctx) (path string, ok bool) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Filename == "" {
		return "", false
	}

	if !upload.Allowed(fh.Filename) {
		// unsupported extension is a silent no-op
		log.Debug().Str("filename", fh.Filename).Msg("rejected project image extension")
		return "", false
	}

	stored, err := upload.Save(fh, s.cfg.Uploads.Dir, upload.SanitizeName(fh.Filename))
	if err != nil {
		log.Error().Err(err).Msg("failed to save project image")
		return "", false
	}

	return stored, true
}

// Add inserts a new project, with an optional image upload.
func (s *Service) Add(c *fiber.Ctx) error {
	p := formProject(c)

	if path, ok := s.saveImage(c); ok {
		p.ImagePath = path
	}

	if err := project.Create(s.db, &p); err != nil {
		log.Error().Err(err).Msg("failed to add project")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Project added successfully!")

	return c.Redirect(handler.AdminPath)
}

// Edit performs a full-row update. An uploaded image replaces the stored
// path; otherwise the previously stored path is retained unchanged.
// A nonexistent ID is a silent no-op.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	p := formProject(c)
	p.ImagePath = c.FormValue("existing_image")

	if path, ok := s.saveImage(c); ok {
		p.ImagePath = path
	}

	if err := project.Update(s.db, uint(id), &p); err != nil {
		log.Error().Err(err).Msg("failed to update project")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Project updated successfully!")

	return c.Redirect(handler.AdminPath)
}

// Delete removes a project. A nonexistent ID is a silent no-op.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := project.Delete(s.db, uint(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete project")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Project deleted successfully!")

	return c.Redirect(handler.AdminPath)
}
