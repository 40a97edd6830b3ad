package linkValidator

import (
	"byteforge/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ShortenRequest is the POST /links payload
type ShortenRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func Shorten() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ShortenRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"url": "Url must be a valid absolute URL!",
			})
		}

		c.Locals("validatedShorten", reqData)
		return c.Next()
	}
}
