// Package nocache forces browsers to revalidate every dynamic response,
// so admin updates are visible on the very next request.
package nocache

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// staticPrefixes are exempt from the no-cache policy.
var staticPrefixes = []string{"/static", "/uploads"}

// New returns a middleware that sets no-cache headers on every
// non-static response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Path()
		for _, prefix := range staticPrefixes {
			if strings.HasPrefix(path, prefix) {
				return err
			}
		}

		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, max-age=0")
		c.Set("Pragma", "no-cache")
		c.Set(fiber.HeaderExpires, "-1")

		return err
	}
}
