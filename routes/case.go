package routes

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/handlers"
)

// registerCaseRoutes wires the per-case subresources and the direct
// appointment and track endpoints.
func registerCaseRoutes(app *fiber.App) {
	appointmentHandler := handlers.NewAppointmentHandler()
	trackHandler := handlers.NewTrackHandler()
	taskHandler := handlers.NewTaskHandler()

	cases := app.Group("/cases/:caseID")
	cases.Get("/appointments", appointmentHandler.GetAppointmentsForCase)
	cases.Post("/appointments", appointmentHandler.CreateAppointment)
	cases.Get("/tracks", trackHandler.GetTracksForCase)
	cases.Post("/tracks", trackHandler.CreateTrack)
	cases.Get("/tasks", taskHandler.GetTasksForCase)

	appointments := app.Group("/appointments")
	appointments.Get("/:id", appointmentHandler.GetAppointment)
	appointments.Patch("/:id", appointmentHandler.UpdateAppointment)
	appointments.Delete("/:id", appointmentHandler.DeleteAppointment)

	tracks := app.Group("/tracks")
	tracks.Get("/:id", trackHandler.GetTrack)
	tracks.Patch("/:id", trackHandler.UpdateTrack)
}
