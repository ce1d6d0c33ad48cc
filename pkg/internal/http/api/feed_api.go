package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/http/exts"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func listHomeTimeline(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	timeline, err := feed.HomeTimeline(c.UserContext(), page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(timeline)
}

func listGroupTimeline(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	page := c.QueryInt("page", 1)
	timeline, err := feed.GroupTimeline(group, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"feed":  timeline,
	})
}

func listFollowTimeline(c *fiber.Ctx) error {
	user, ok := exts.Authenticated(c)
	if !ok {
		return exts.RedirectToLogin(c)
	}

	page := c.QueryInt("page", 1)
	timeline, err := feed.FollowTimeline(user, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(timeline)
}
