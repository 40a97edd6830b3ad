package controllers

import (
	"byteforge/database"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service and database liveness
func HealthCheck(c *fiber.Ctx) error {
	dbOK := false
	if database.Database.Db != nil {
		if sqlDB, err := database.Database.Db.DB(); err == nil {
			dbOK = sqlDB.Ping() == nil
		}
	}

	status := "ok"
	if !dbOK {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"database":  dbOK,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
