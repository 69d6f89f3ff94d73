package routes

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/handlers"
)

func registerAvailabilityRoutes(app *fiber.App) {
	handler := handlers.NewAvailabilityHandler()
	group := app.Group("/availability")
	group.Get("/", handler.GetAvailability)
	group.Patch("/:date/slot/:hourStart", handler.UpdateCapacity)
}
