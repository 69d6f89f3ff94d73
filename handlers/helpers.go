package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/pkg/timeslot"
)

// ActingUserKey is the Locals key under which the route middleware stores the
// authenticated user.
const ActingUserKey = "actingUser"

// timeNow is swapped out in tests.
var timeNow = time.Now

func actingUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(ActingUserKey).(*models.User)
	return user
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.UserInputf("Ongeldige id '%s'.", c.Params(name))
	}
	return id, nil
}

// parseDateQuery reads a yyyy-mm-dd query parameter as an Amsterdam calendar
// date, falling back to the given default when absent.
func parseDateQuery(c *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return timeslot.DayStart(fallback), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, timeslot.Amsterdam)
	if err != nil {
		return time.Time{}, apperrors.UserInputf("Ongeldige datum '%s', verwacht formaat jjjj-mm-dd.", raw)
	}
	return parsed, nil
}

func parseDateParam(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Params(name)
	parsed, err := time.ParseInLocation("2006-01-02", raw, timeslot.Amsterdam)
	if err != nil {
		return time.Time{}, apperrors.UserInputf("Ongeldige datum '%s', verwacht formaat jjjj-mm-dd.", raw)
	}
	return parsed, nil
}
