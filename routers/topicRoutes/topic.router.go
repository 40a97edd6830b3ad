package topicRoutes

import (
	controllers "byteforge/controllers/topic"
	validators "byteforge/validators/topic"

	"github.com/gofiber/fiber/v2"
)

// SetupTopicRoutes sets up all topic and subtopic routes.
// Literal segments ("subtopics", "category") are registered before the
// parameterized ones so /topics/subtopics/:id never matches /topics/:id.
func SetupTopicRoutes(app *fiber.App) {
	topicGroup := app.Group("/topics")

	// subtopics addressed by their own slug
	topicGroup.Get("/subtopics/:id", controllers.GetSubTopic)
	topicGroup.Put("/subtopics/:id", validators.UpdateSubTopic(), controllers.UpdateSubTopic)
	topicGroup.Delete("/subtopics/:id", controllers.DeleteSubTopic)

	// topics filtered by category
	topicGroup.Get("/category/:categoryId", controllers.GetTopicsByCategory)

	// topic collection
	topicGroup.Get("/", controllers.GetAllTopics)
	topicGroup.Post("/", validators.CreateTopic(), controllers.CreateTopic)

	// subtopics scoped to a topic
	topicGroup.Get("/:topicId/subtopics", controllers.GetTopicSubTopics)
	topicGroup.Post("/:topicId/subtopics", validators.UpsertSubTopic(), controllers.UpsertSubTopic)
	topicGroup.Get("/:topicId/subtopics/:id", controllers.GetTopicSubTopic)

	// single topic
	topicGroup.Get("/:id", controllers.GetTopic)
	topicGroup.Put("/:id", validators.UpdateTopic(), controllers.UpdateTopic)
	topicGroup.Delete("/:id", controllers.DeleteTopic)
}
