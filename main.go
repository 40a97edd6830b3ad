package main

import (
	"byteforge/config"
	healthControllers "byteforge/controllers/health"
	"byteforge/database"
	categoryRoutes "byteforge/routers/categoryRoutes"
	linkRoutes "byteforge/routers/linkRoutes"
	topicRoutes "byteforge/routers/topicRoutes"
	"byteforge/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	// single frontend origin, cookies allowed
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.FrontendOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", healthControllers.HealthCheck)

	categoryRoutes.SetupCategoryRoutes(app)
	topicRoutes.SetupTopicRoutes(app)
	linkRoutes.SetupLinkRoutes(app)

	if config.AppConfig.EnableReconciler {
		utils.InitializeReconcileScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
