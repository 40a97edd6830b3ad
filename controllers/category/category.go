package controllers

import (
	"byteforge/database"
	"byteforge/middleware"
	"byteforge/models"
	"byteforge/services"
	categoryValidator "byteforge/validators/category"

	"github.com/gofiber/fiber/v2"
)

// GetAllCategories lists every category sorted by display order
func GetAllCategories(c *fiber.Ctx) error {
	svc := services.NewCategoryService(database.Database.Db)

	categories, err := svc.List()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(categories)
}

// GetCategory returns one category by its slug
func GetCategory(c *fiber.Ctx) error {
	svc := services.NewCategoryService(database.Database.Db)

	category, err := svc.GetByID(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(category)
}

// CreateCategory inserts a new category with an empty topic list
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	svc := services.NewCategoryService(database.Database.Db)
	category, err := svc.Create(services.CategoryInput{
		ID:          models.Slug(reqData.ID),
		Title:       reqData.Title,
		Description: reqData.Description,
		Icon:        reqData.Icon,
		Color:       reqData.Color,
		Order:       *reqData.Order,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory applies a partial update to a category
func UpdateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategoryUpdate").(*categoryValidator.UpdateCategoryRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	svc := services.NewCategoryService(database.Database.Db)
	category, err := svc.Update(models.Slug(c.Params("id")), services.CategoryPatch{
		Title:       reqData.Title,
		Description: reqData.Description,
		Icon:        reqData.Icon,
		Color:       reqData.Color,
		Order:       reqData.Order,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(category)
}

// DeleteCategory removes a category; its topics are left in place
func DeleteCategory(c *fiber.Ctx) error {
	svc := services.NewCategoryService(database.Database.Db)

	category, err := svc.Delete(models.Slug(c.Params("id")))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message":         "Category deleted successfully!",
		"deletedCategory": category,
	})
}
