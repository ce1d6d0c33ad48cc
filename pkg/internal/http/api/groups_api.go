package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

func listGroup(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	groups, err := services.ListGroup(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}
