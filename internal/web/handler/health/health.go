// Package health implements the liveness probe for keep-alive services.
package health

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

// Path is the path of the health endpoint.
const Path = "/health"

// Service is the health handler service.
type Service struct {
	handler.Service
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, _ *config.Config, _ *gorm.DB) error {
	if app == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	app.Get(Path, s.Get)

	return nil
}

// Get returns the liveness payload.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
