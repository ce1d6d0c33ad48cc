package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

// authenticate resolves the access token into an account. Requests with a
// missing or invalid token simply stay anonymous, handlers decide whether
// that matters.
func authenticate(c *fiber.Ctx) error {
	raw := c.Cookies("access_token")
	if header := c.Get(fiber.HeaderAuthorization); len(header) > 0 {
		raw = strings.TrimPrefix(header, "Bearer ")
	}

	if len(raw) > 0 {
		if user, err := services.VerifyAccessToken(raw); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}
