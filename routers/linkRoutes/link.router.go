package linkRoutes

import (
	controllers "byteforge/controllers/link"
	validators "byteforge/validators/link"

	"github.com/gofiber/fiber/v2"
)

// SetupLinkRoutes sets up the URL-shortener routes
func SetupLinkRoutes(app *fiber.App) {
	linkGroup := app.Group("/links")

	linkGroup.Post("/", validators.Shorten(), controllers.ShortenLink)
	linkGroup.Get("/:code", controllers.GetLinkStats)

	// redirect lives at the top level for short URLs
	app.Get("/s/:code", controllers.RedirectLink)
}
