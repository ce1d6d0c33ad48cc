package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

var feed *services.FeedBuilder

// MapAPIs wires up the routes. Static paths go first so they win over the
// /:username wildcards.
func MapAPIs(app *fiber.App, fb *services.FeedBuilder) {
	feed = fb

	app.Get("/", listHomeTimeline)
	app.Get("/groups", listGroup)
	app.Get("/group/:slug", listGroupTimeline)
	app.Get("/new", newPostForm)
	app.Post("/new", createPost)
	app.Get("/follow", listFollowTimeline)

	app.Get("/:username", getProfile)
	app.Get("/:username/follow", followAccount)
	app.Get("/:username/unfollow", unfollowAccount)
	app.Get("/:username/:postId", getPost)
	app.Get("/:username/:postId/edit", editPostForm)
	app.Post("/:username/:postId/edit", editPost)
	app.Post("/:username/:postId/comment", createComment)
}
