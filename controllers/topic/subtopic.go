package controllers

import (
	"byteforge/database"
	"byteforge/middleware"
	"byteforge/models"
	"byteforge/services"
	topicValidator "byteforge/validators/topic"

	"github.com/gofiber/fiber/v2"
)

// GetTopicSubTopics lists the subtopics of a topic
func GetTopicSubTopics(c *fiber.Ctx) error {
	svc := services.NewSubTopicService(database.Database.Db)

	subtopics, err := svc.ListByTopicID(models.Slug(c.Params("topicId")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(subtopics)
}

// GetTopicSubTopic returns one subtopic scoped to its topic
func GetTopicSubTopic(c *fiber.Ctx) error {
	svc := services.NewSubTopicService(database.Database.Db)

	subtopic, err := svc.GetByID(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if subtopic.TopicSlug != models.Slug(c.Params("topicId")) {
		return middleware.ErrorResponse(c, services.NotFound("SubTopic"))
	}
	return c.JSON(subtopic)
}

// GetSubTopic returns one subtopic by its slug
func GetSubTopic(c *fiber.Ctx) error {
	svc := services.NewSubTopicService(database.Database.Db)

	subtopic, err := svc.GetByID(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(subtopic)
}

// UpsertSubTopic creates the subtopic under the topic or updates it in place
func UpsertSubTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubTopic").(*topicValidator.UpsertSubTopicRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	svc := services.NewSubTopicService(database.Database.Db)
	subtopic, message, err := svc.Upsert(models.Slug(c.Params("topicId")), services.SubTopicInput{
		ID:            models.Slug(reqData.SubtopicID),
		Title:         reqData.Title,
		Description:   reqData.Description,
		EstimatedTime: reqData.EstimatedTime,
		Content:       reqData.Content,
		CodeExamples:  reqData.CodeExamples,
		Resources:     reqData.Resources,
		QuizQuestions: reqData.QuizQuestions,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"subtopic": subtopic,
		"message":  message,
	})
}

// UpdateSubTopic applies a partial update to a subtopic
func UpdateSubTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubTopicUpdate").(*topicValidator.UpdateSubTopicRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	svc := services.NewSubTopicService(database.Database.Db)
	subtopic, err := svc.Update(models.Slug(c.Params("id")), services.SubTopicPatch{
		Title:         reqData.Title,
		Description:   reqData.Description,
		EstimatedTime: reqData.EstimatedTime,
		Content:       reqData.Content,
		CodeExamples:  reqData.CodeExamples,
		Resources:     reqData.Resources,
		QuizQuestions: reqData.QuizQuestions,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(subtopic)
}

// DeleteSubTopic removes a subtopic
func DeleteSubTopic(c *fiber.Ctx) error {
	svc := services.NewSubTopicService(database.Database.Db)

	subtopic, err := svc.Delete(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "SubTopic deleted successfully!",
		"subtopic": subtopic,
	})
}
