// Package certifications implements the admin CRUD routes for certifications.
package certifications

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/certification"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

// BasePath is the base path of the certifications admin routes.
const BasePath = handler.AdminPath + "/certifications"

// Service is the certifications admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the certifications admin handler.
var Handler = Service{}

// Init initializes the certifications admin handler.
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

// Add inserts a new certification.
func (s *Service) Add(c *fiber.Ctx) error {
	_, err := certification.Create(s.db, c.FormValue("title"), c.FormValue("issuer"), c.FormValue("date_earned"))
	if err != nil {
		log.Error().Err(err).Msg("failed to add certification")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Certification added successfully!")

	return c.Redirect(handler.AdminPath)
}

// Edit performs a full-row update. A nonexistent ID is a silent no-op.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	err = certification.Update(s.db, uint(id), c.FormValue("title"), c.FormValue("issuer"), c.FormValue("date_earned"))
	if err != nil {
		log.Error().Err(err).Msg("failed to update certification")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Certification updated successfully!")

	return c.Redirect(handler.AdminPath)
}

// Delete removes a certification. A nonexistent ID is a silent no-op.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := certification.Delete(s.db, uint(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete certification")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Certification deleted successfully!")

	return c.Redirect(handler.AdminPath)
}
