package categoryRoutes

import (
	controllers "byteforge/controllers/category"
	validators "byteforge/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up all category routes
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/categories")

	categoryGroup.Get("/", controllers.GetAllCategories)
	categoryGroup.Post("/", validators.CreateCategory(), controllers.CreateCategory)
	categoryGroup.Get("/:id", controllers.GetCategory)
	categoryGroup.Put("/:id", validators.UpdateCategory(), controllers.UpdateCategory)
	categoryGroup.Delete("/:id", controllers.DeleteCategory)
}
