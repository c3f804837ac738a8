// Package contact validates and persists inbound visitor messages.
package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/message"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

const (
	// Path is the path of the contact form endpoint.
	Path = "/contact"

	// redirectTarget brings the visitor back to the contact section.
	redirectTarget = "/#contact"
)

// Form holds the trimmed contact form fields.
// The email rule is deliberately weak: at least one '@' and one '.',
// not full RFC validation.
type Form struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,weakemail"`
	Message string `validate:"required"`
}

// Service is the contact form handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the contact form handler.
var Handler = Service{}

// Init initializes the contact form handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validate = newValidator()

	app.Post(Path, s.Post)

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()

	// keep the original loose syntactic check instead of the built-in
	// email rule, which would reject addresses the system accepts
	_ = v.RegisterValidation("weakemail", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return strings.Contains(email, "@") && strings.Contains(email, ".")
	})

	return v
}

// Post handles a contact form submission. On validation failure nothing
// is persisted.
func (s *Service) Post(c *fiber.Ctx) error {
	form := Form{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}

	if err := s.validate.Struct(form); err != nil {
		notice := "All fields are required."

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "weakemail" {
					notice = "Please enter a valid email address."
				}
			}
		}

		flash.Set(c, flash.LevelError, notice)

		return c.Redirect(redirectTarget)
	}

	if _, err := message.Create(s.db, form.Name, form.Email, form.Message); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")
		flash.Set(c, flash.LevelError, "Something went wrong, please try again.")

		return c.Redirect(redirectTarget)
	}

	flash.Set(c, flash.LevelSuccess, "Thank you for your message! I will get back to you soon.")

	return c.Redirect(redirectTarget)
}
