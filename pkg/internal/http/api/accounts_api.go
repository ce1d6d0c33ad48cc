package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/http/exts"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func getProfile(c *fiber.Ctx) error {
	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	page := c.QueryInt("page", 1)
	timeline, err := feed.AuthorTimeline(author, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var following bool
	if user, ok := exts.Authenticated(c); ok {
		following = services.IsFollowing(user, author)
	}

	return c.JSON(fiber.Map{
		"author":    author,
		"following": following,
		"feed":      timeline,
	})
}
