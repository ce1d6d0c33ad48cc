package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/inkwelldev/inkwell/pkg/internal/cache"
	"github.com/inkwelldev/inkwell/pkg/internal/http/api"
	"github.com/inkwelldev/inkwell/pkg/internal/http/exts"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

type App struct {
	app  *fiber.App
	feed *services.FeedBuilder
}

func NewServer() *App {
	feed := services.NewFeedBuilder(cache.NewService(cache.S))

	app := fiber.New(fiber.Config{
		AppName:               "Inkwell",
		ServerHeader:          "Inkwell",
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var invalid *exts.ValidationError
			if errors.As(err, &invalid) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": invalid.Fields})
			}

			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"code": code, "message": err.Error()})
		},
	})

	app.Use(authenticate)

	api.MapAPIs(app, feed)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	})

	return &App{app: app, feed: feed}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the HTTP server.")
	}
}
