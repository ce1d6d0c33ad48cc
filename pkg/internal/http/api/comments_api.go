package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/http/exts"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func createComment(c *fiber.Ctx) error {
	user, ok := exts.Authenticated(c)
	if !ok {
		return exts.RedirectToLogin(c)
	}

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	item, err := services.GetPostWithAuthor(database.C, uint(id), c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `form:"text" json:"text" validate:"required,max=200"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewComment(user, item, data.Text); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postPath(item), fiber.StatusFound)
}
