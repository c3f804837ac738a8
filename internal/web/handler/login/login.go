// Package login provides the admin login page and form handler.
package login

import (
	"errors"

	"github.com/alexedwards/argon2id"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminPath + "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":  s.cfg.Title,
		"Notice": flash.Get(c),
	})
}

// Post handles the login form submission. Login succeeds only when the
// submitted username equals the configured admin username and the
// password matches the configured hash.
func (s *Service) Post(c *fiber.Ctx) error {
	var (
		username = c.FormValue("username")
		password = c.FormValue("password")
	)

	match, err := argon2id.ComparePasswordAndHash(password, s.cfg.Admin.PasswordHash)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify password")
		match = false
	}

	if username != s.cfg.Admin.Username || !match {
		return c.Render(TemplateName, fiber.Map{
			"Title":  s.cfg.Title,
			"Notice": &flash.Notice{Level: flash.LevelError, Message: "Invalid credentials."},
		})
	}

	sessionID := session.NewID()

	adminSession := &session.Data{Admin: true}
	if err := adminSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Render(TemplateName, fiber.Map{
			"Title":  s.cfg.Title,
			"Notice": &flash.Notice{Level: flash.LevelError, Message: "Internal server error."},
		})
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	flash.Set(c, flash.LevelSuccess, "Login successful!")

	return c.Redirect(handler.AdminPath)
}
