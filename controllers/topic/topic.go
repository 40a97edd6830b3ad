package controllers

import (
	"byteforge/database"
	"byteforge/middleware"
	"byteforge/models"
	"byteforge/services"
	topicValidator "byteforge/validators/topic"

	"github.com/gofiber/fiber/v2"
)

// GetAllTopics lists every topic, most recently updated first
func GetAllTopics(c *fiber.Ctx) error {
	svc := services.NewTopicService(database.Database.Db)

	topics, err := svc.List()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(topics)
}

// GetTopic returns one topic by its slug
func GetTopic(c *fiber.Ctx) error {
	svc := services.NewTopicService(database.Database.Db)

	topic, err := svc.GetByID(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(topic)
}

// GetTopicsByCategory lists the topics belonging to a category
func GetTopicsByCategory(c *fiber.Ctx) error {
	svc := services.NewTopicService(database.Database.Db)

	topics, err := svc.ListByCategory(models.Slug(c.Params("categoryId")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(topics)
}

// CreateTopic inserts a topic and registers it on its category
func CreateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*topicValidator.CreateTopicRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	svc := services.NewTopicService(database.Database.Db)
	topic, err := svc.Create(services.TopicInput{
		ID:            models.Slug(reqData.ID),
		Title:         reqData.Title,
		Description:   reqData.Description,
		Level:         reqData.Level,
		Duration:      reqData.Duration,
		Category:      models.Slug(reqData.Category),
		Prerequisites: toSlugs(reqData.Prerequisites),
		Tags:          reqData.Tags,
		Image:         reqData.Image,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

// UpdateTopic applies a partial update; category changes move the topic
// between the two categories' lists
func UpdateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopicUpdate").(*topicValidator.UpdateTopicRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	patch := services.TopicPatch{
		Title:       reqData.Title,
		Description: reqData.Description,
		Level:       reqData.Level,
		Duration:    reqData.Duration,
		Category:    models.Slug(reqData.Category),
		Image:       reqData.Image,
	}
	if reqData.Prerequisites != nil {
		prerequisites := toSlugs(*reqData.Prerequisites)
		patch.Prerequisites = &prerequisites
	}
	if reqData.Tags != nil {
		patch.Tags = reqData.Tags
	}

	svc := services.NewTopicService(database.Database.Db)
	topic, err := svc.Update(models.Slug(c.Params("id")), patch)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(topic)
}

// DeleteTopic removes a topic and pulls it from its category's list
func DeleteTopic(c *fiber.Ctx) error {
	svc := services.NewTopicService(database.Database.Db)

	topic, err := svc.Delete(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Topic deleted successfully!",
		"deletedTopic": topic,
	})
}

func toSlugs(values []string) []models.Slug {
	if values == nil {
		return nil
	}
	slugs := make([]models.Slug, len(values))
	for i, v := range values {
		slugs[i] = models.Slug(v)
	}
	return slugs
}
