package controllers

import (
	"byteforge/database"
	"byteforge/middleware"
	"byteforge/services"
	linkValidator "byteforge/validators/link"

	"github.com/gofiber/fiber/v2"
)

// ShortenLink stores the target URL under a fresh short code
func ShortenLink(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedShorten").(*linkValidator.ShortenRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	svc := services.NewLinkService(database.Database.Db)
	link, err := svc.Shorten(reqData.URL)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// GetLinkStats returns the link record without counting a visit
func GetLinkStats(c *fiber.Ctx) error {
	svc := services.NewLinkService(database.Database.Db)

	link, err := svc.Stats(c.Params("code"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.JSON(link)
}

// RedirectLink counts the visit and redirects to the target URL
func RedirectLink(c *fiber.Ctx) error {
	svc := services.NewLinkService(database.Database.Db)

	link, err := svc.Resolve(c.Params("code"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.Redirect(link.URL, fiber.StatusFound)
}
