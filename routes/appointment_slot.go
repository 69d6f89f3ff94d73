package routes

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/handlers"
)

// Public booking view; no authentication.
func registerAppointmentSlotRoutes(app *fiber.App) {
	handler := handlers.NewAppointmentSlotHandler()
	app.Get("/appointment-slots", handler.GetAppointmentSlots)
}
