package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ondernemercentraal.nl/handlers"
	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/repositories"
)

// actingUserMiddleware resolves the authenticated user from the X-User-ID
// header set by the identity proxy. Requests without the header stay
// anonymous; permission checks in the services reject them where needed.
func actingUserMiddleware() fiber.Handler {
	userRepository := repositories.NewUserRepository()
	return func(c *fiber.Ctx) error {
		header := c.Get("X-User-ID")
		if header == "" {
			return c.Next()
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			return apperrors.UserInput("Ongeldige gebruikersidentificatie.")
		}
		user, err := userRepository.FindByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.PermissionDenied("Onbekende gebruiker.")
			}
			return err
		}

		c.Locals(handlers.ActingUserKey, user)
		return c.Next()
	}
}
