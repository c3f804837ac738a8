// Package services implements the admin CRUD routes for services.
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/service"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

// BasePath is the base path of the services admin routes.
const BasePath = handler.AdminPath + "/services"

// Service is the services admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the services admin handler.
var Handler = Service{}

// Init initializes the services admin handler.
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

// Add inserts a new service.
func (s *Service) Add(c *fiber.Ctx) error {
	_, err := service.Create(s.db, c.FormValue("title"), c.FormValue("description"), c.FormValue("icon"))
	if err != nil {
		log.Error().Err(err).Msg("failed to add service")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Service added successfully!")

	return c.Redirect(handler.AdminPath)
}

// Edit performs a full-row update. A nonexistent ID is a silent no-op.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	err = service.Update(s.db, uint(id), c.FormValue("title"), c.FormValue("description"), c.FormValue("icon"))
	if err != nil {
		log.Error().Err(err).Msg("failed to update service")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Service updated successfully!")

	return c.Redirect(handler.AdminPath)
}

// Delete removes a service. A nonexistent ID is a silent no-op.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := service.Delete(s.db, uint(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete service")
		return fiber.ErrInternalServerError
	}

	flash.Set(c, flash.LevelSuccess, "Service deleted successfully!")

	return c.Redirect(handler.AdminPath)
}
