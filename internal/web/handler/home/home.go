// Package home renders the public landing page from a fresh read of
// every display collection.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/certification"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/experience"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/project"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/service"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/setting"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/skill"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "index"
)

// Profile is the flat record of profile-related settings.
type Profile struct {
	Name     string
	Title    string
	Location string
	Email    string
	Linkedin string
	Summary  string
	Image    string
}

// Service is the landing page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the landing page handler.
var Handler = Service{}

// Init initializes the landing page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get aggregates all display collections into the landing page view
// model. Every collection is re-read on each request.
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

	categories, grouped := skill.GroupByCategory(skills)

	profile := Profile{
		Name:     setting.GetValue(s.db, "profile_name", ""),
		Title:    setting.GetValue(s.db, "profile_title", ""),
		Location: setting.GetValue(s.db, "profile_location", ""),
		Email:    setting.GetValue(s.db, "profile_email", ""),
		Linkedin: setting.GetValue(s.db, "profile_linkedin", ""),
		Summary:  setting.GetValue(s.db, "profile_summary", ""),
		Image:    setting.GetValue(s.db, "profile_image", ""),
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":           s.cfg.Title,
		"Notice":          flash.Get(c),
		"Profile":         profile,
		"SkillCategories": categories,
		"Skills":          grouped,
		"Services":        services,
		"Projects":        projects,
		"Experience":      entries,
		"Certifications":  certs,
	})
}
