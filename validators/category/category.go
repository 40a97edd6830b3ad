package categoryValidator

import (
	"byteforge/middleware"
	"byteforge/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCategoryRequest is the POST /categories payload
type CreateCategoryRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
	Color       string `json:"color" validate:"required"`
	Order       *int   `json:"order" validate:"required"`
}

// UpdateCategoryRequest is the PUT /categories/:id payload
type UpdateCategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       *int   `json:"order"`
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[jsonField(fieldErr.Field())] = fieldErr.Field() + " is required!"
			}
		}
		if reqData.ID != "" && !models.Slug(reqData.ID).Valid() {
			errors["id"] = "Id must be a lowercase slug!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}

// jsonField lowercases the first rune of a struct field name to match the
// json tag convention used by the request structs
func jsonField(name string) string {
	if name == "ID" {
		return "id"
	}
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}
