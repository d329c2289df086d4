package handlers

import (
	"remit/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports process liveness plus DB and redis reachability.
func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "not configured"
	}

	redisStatus := "connected"
	if repositories.CacheService != nil {
		if err := repositories.CacheService.Ping(c.Context()); err != nil {
			redisStatus = "unreachable"
		}
	} else {
		redisStatus = "not configured"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
