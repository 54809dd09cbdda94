// handlers/system_routes.go
package handlers

import (
	"deeper-dungeons/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func SetupSystemRoutes(router fiber.Router, system *services.SystemService) {
	router.Get("/healthCheck", func(c *fiber.Ctx) error {
		log.Debug().Msg("healthCheck")
		return c.SendString("Alive")
	})

	router.Get("/system/version", func(c *fiber.Ctx) error {
		return c.SendString(system.Version())
	})

	// responds right away; the process exits after the shutdown delay
	router.Post("/system/shutdown", func(c *fiber.Ctx) error {
		if err := system.ScheduleShutdown(); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
}
