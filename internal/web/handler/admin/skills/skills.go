// Package skills implements the admin CRUD routes for skills.
package skills

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/skill"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

// BasePath is the base path of the skills admin routes.
const BasePath = handler.AdminPath + "/skills"

// Service is the skills admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the skills admin handler.
var Handler = Service{}

// Init initializes the skills admin handler.
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

// Add inserts a new skill.
func (s *Service) Add(c *fiber.Ctx) error {
	if _, err := skill.Create(s.db, c.FormValue("category"), c.FormValue("name")); err != nil {
		log.Error().Err(err).Msg("failed to add skill")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Skill added successfully!")

	return c.Redirect(handler.AdminPath)
}

// Edit performs a full-row update. A nonexistent ID is a silent no-op.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := skill.Update(s.db, uint(id), c.FormValue("category"), c.FormValue("name")); err != nil {
		log.Error().Err(err).Msg("failed to update skill")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Skill updated successfully!")

	return c.Redirect(handler.AdminPath)
}

// Delete removes a skill. A nonexistent ID is a silent no-op.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := skill.Delete(s.db, uint(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete skill")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Skill deleted successfully!")

	return c.Redirect(handler.AdminPath)
}
