// Package flash implements one-shot notices carried across a redirect
// in a cookie, read and cleared on the next page render.
package flash

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Levels used by handlers.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notice is a single flash message.
type Notice struct {
	Level   string
	Message string
}

// Set stores a notice for the next rendered page.
func Set(c *fiber.Ctx, level, message string) {
	v := url.Values{}
	v.Set("level", level)
	v.Set("message", message)

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    v.Encode(),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Get returns the pending notice, if any, and clears it.
func Get(c *fiber.Ctx) *Notice {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return nil
	}

	// clear the cookie, a notice is shown exactly once
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	v, err := url.ParseQuery(raw)
	if err != nil {
		return nil
	}

	return &Notice{
		Level:   v.Get("level"),
		Message: v.Get("message"),
	}
}
