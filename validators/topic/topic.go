package topicValidator

import (
	"byteforge/middleware"
	"byteforge/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateTopicRequest is the POST /topics payload
type CreateTopicRequest struct {
	ID            string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Level         string   `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration      string   `json:"duration"`
	Category      string   `json:"category" validate:"required"`
	Prerequisites []string `json:"prerequisites"`
	Tags          []string `json:"tags"`
	Image         string   `json:"image"`
}

// UpdateTopicRequest is the PUT /topics/:id payload
type UpdateTopicRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Level         string    `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration      string    `json:"duration"`
	Category      string    `json:"category"`
	Prerequisites *[]string `json:"prerequisites"`
	Tags          *[]string `json:"tags"`
	Image         string    `json:"image"`
}

func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTopicRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Tag() {
				case "oneof":
					errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
				default:
					errors[jsonField(fieldErr.Field())] = fieldErr.Field() + " is required!"
				}
			}
		}
		if reqData.ID != "" && !models.Slug(reqData.ID).Valid() {
			errors["id"] = "Id must be a lowercase slug!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateTopicRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"level": "Level must be Beginner, Intermediate or Advanced!",
			})
		}

		c.Locals("validatedTopicUpdate", reqData)
		return c.Next()
	}
}

func jsonField(name string) string {
	if name == "ID" {
		return "id"
	}
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}
