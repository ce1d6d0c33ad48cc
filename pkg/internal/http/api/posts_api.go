package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/http/exts"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

type postForm struct {
	Text  string `form:"text" json:"text" validate:"required,max=200"`
	Group *uint  `form:"group" json:"group"`
}

func postPath(item models.Post) string {
	return fmt.Sprintf("/%s/%d", item.Author.Name, item.ID)
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	item, err := services.GetPostWithAuthor(database.C, uint(id), c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListComment(item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var following bool
	if user, ok := exts.Authenticated(c); ok {
		following = services.IsFollowing(user, item.Author)
	}

	return c.JSON(fiber.Map{
		"post":      item,
		"author":    item.Author,
		"comments":  comments,
		"following": following,
	})
}

func newPostForm(c *fiber.Ctx) error {
	if _, ok := exts.Authenticated(c); !ok {
		return exts.RedirectToLogin(c)
	}

	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"form":   postForm{},
		"groups": groups,
	})
}

func createPost(c *fiber.Ctx) error {
	user, ok := exts.Authenticated(c)
	if !ok {
		return exts.RedirectToLogin(c)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{Text: data.Text}
	if data.Group != nil {
		group, err := services.GetGroupWithID(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		item.GroupID = &group.ID
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.StoreImage(file)
		if errors.Is(err, services.ErrNotImage) {
			return exts.FieldError("image", err.Error())
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		item.Image = path
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/", fiber.StatusFound)
}

func editPostForm(c *fiber.Ctx) error {
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

	// Someone else's post, send them back without complaining.
	if item.AuthorID != user.ID {
		return c.Redirect(postPath(item), fiber.StatusFound)
	}

	return c.JSON(fiber.Map{
		"form": postForm{Text: item.Text, Group: item.GroupID},
		"post": item,
	})
}

func editPost(c *fiber.Ctx) error {
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

	if item.AuthorID != user.ID {
		return c.Redirect(postPath(item), fiber.StatusFound)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	item.GroupID = nil
	if data.Group != nil {
		group, err := services.GetGroupWithID(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		item.GroupID = &group.ID
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.StoreImage(file)
		if errors.Is(err, services.ErrNotImage) {
			return exts.FieldError("image", err.Error())
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		item.Image = path
	}

	if _, err := services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postPath(item), fiber.StatusFound)
}
