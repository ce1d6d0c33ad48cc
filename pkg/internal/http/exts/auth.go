package exts

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

func Authenticated(c *fiber.Ctx) (models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	return user, ok
}

// RedirectToLogin sends the client to the external login page with a link
// back to the page they tried to reach.
func RedirectToLogin(c *fiber.Ctx) error {
	loginPath := viper.GetString("security.login_path")
	return c.Redirect(fmt.Sprintf("%s?next=%s", loginPath, url.QueryEscape(c.Path())), fiber.StatusFound)
}
