package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/http/exts"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func followAccount(c *fiber.Ctx) error {
	user, ok := exts.Authenticated(c)
	if !ok {
		return exts.RedirectToLogin(c)
	}

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.FollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/"+author.Name, fiber.StatusFound)
}

func unfollowAccount(c *fiber.Ctx) error {
	user, ok := exts.Authenticated(c)
	if !ok {
		return exts.RedirectToLogin(c)
	}

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/"+author.Name, fiber.StatusFound)
}
