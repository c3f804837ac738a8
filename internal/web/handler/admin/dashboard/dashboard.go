// Package dashboard renders the admin panel overview.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/certification"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/experience"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/message"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/project"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/service"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/setting"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/skill"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

const (
	// Path is the path to the admin dashboard.
	Path = handler.AdminPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard"

	// MessageLimit caps the number of messages shown.
	MessageLimit = 50
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the dashboard with every collection, the most recent
// messages, and the settings map.
func (s *Service) Get(c *fiber.Ctx) error {
	skills, err := skill.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list skills")
		return fiber.ErrInternalServerError
	}

	services, err := service.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")
		return fiber.ErrInternalServerError
	}

	projects, err := project.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list projects")
		return fiber.ErrInternalServerError
	}

	entries, err := experience.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list experience")
		return fiber.ErrInternalServerError
	}

	certs, err := certification.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list certifications")
		return fiber.ErrInternalServerError
	}

	messages, err := message.ListRecent(s.db, MessageLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list messages")
		return fiber.ErrInternalServerError
	}

	settings, err := setting.All(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")
		return fiber.ErrInternalServerError
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":          s.cfg.Title,
		"Notice":         flash.Get(c),
		"Skills":         skills,
		"Services":       services,
		"Projects":       projects,
		"Experience":     entries,
		"Certifications": certs,
		"Messages":       messages,
		"Settings":       settings,
	})
}
