package exts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// ValidationError carries per-field messages so forms can be re-rendered
// with the offending fields marked. Nothing is persisted when it is raised.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func BindAndValidate(c *fiber.Ctx, data any) error {
	if err := c.BodyParser(data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := validation.Struct(data); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make(map[string]string, len(invalid))
			for _, item := range invalid {
				fields[strings.ToLower(item.Field())] = fmt.Sprintf("failed on the %s rule", item.Tag())
			}
			return &ValidationError{Fields: fields}
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
