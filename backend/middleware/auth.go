package middleware

import (
	"github.com/gofiber/fiber/v2"

	"medihome/backend/config"
	"medihome/backend/models"
	"medihome/backend/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

// TherapistMiddleware gates routine authoring and the therapist panel on the
// role carried in the token.
func TherapistMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := utils.ExtractRoleFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if role != models.RoleTherapist {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Therapist access required",
			})
		}

		return c.Next()
	}
}
