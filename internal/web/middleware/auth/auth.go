// Package auth gates mutating admin routes behind the session flag.
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/login"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

// New returns a middleware protecting every /admin route except the
// login page. A valid session has its expiry window refreshed (sliding
// 24h window); anything else is redirected to the login form with no
// side effects.
func New(expiry time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), login.Path) {
			return c.Next()
		}

		sessionID := c.Cookies(session.CookieName)
		if sessionID == "" {
			return redirectToLogin(c)
		}

		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err != nil {
			return redirectToLogin(c)
		}

		if !sessData.Valid() {
			return redirectToLogin(c)
		}

		// slide the expiry window on every authenticated request
		if err := sessData.Write(sessionID, expiry); err != nil {
			log.Error().Err(err).Msg("failed to refresh session expiry")
		}

		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	flash.Set(c, flash.LevelError, "Please log in to access this page.")

	return c.Redirect(login.Path)
}
