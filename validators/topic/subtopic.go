package topicValidator

import (
	"byteforge/middleware"
	"byteforge/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UpsertSubTopicRequest is the POST /topics/:topicId/subtopics payload
type UpsertSubTopicRequest struct {
	SubtopicID    string                `json:"subtopicId" validate:"required"`
	Title         string                `json:"title" validate:"required"`
	Description   string                `json:"description"`
	EstimatedTime string                `json:"estimatedTime"`
	Content       []models.ContentBlock `json:"content"`
	CodeExamples  []models.CodeExample  `json:"codeExamples"`
	Resources     []models.Resource     `json:"resources"`
	QuizQuestions []models.QuizQuestion `json:"quizQuestions"`
}

// UpdateSubTopicRequest is the PUT /topics/subtopics/:id payload
type UpdateSubTopicRequest struct {
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	EstimatedTime string                 `json:"estimatedTime"`
	Content       *[]models.ContentBlock `json:"content"`
	CodeExamples  *[]models.CodeExample  `json:"codeExamples"`
	Resources     *[]models.Resource     `json:"resources"`
	QuizQuestions *[]models.QuizQuestion `json:"quizQuestions"`
}

var contentBlockTypes = map[string]bool{
	"text": true, "code": true, "image": true, "video": true,
}

func UpsertSubTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpsertSubTopicRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[jsonField(fieldErr.Field())] = fieldErr.Field() + " is required!"
			}
		}
		if reqData.SubtopicID != "" && !models.Slug(reqData.SubtopicID).Valid() {
			errors["subtopicId"] = "SubtopicId must be a lowercase slug!"
		}
		for _, block := range reqData.Content {
			if !contentBlockTypes[block.Type] {
				errors["content"] = "Content block type must be text, code, image or video!"
				break
			}
		}
		for _, question := range reqData.QuizQuestions {
			if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
				errors["quizQuestions"] = "CorrectAnswer must index into options!"
				break
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubTopic", reqData)
		return c.Next()
	}
}

func UpdateSubTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSubTopicRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		c.Locals("validatedSubTopicUpdate", reqData)
		return c.Next()
	}
}
