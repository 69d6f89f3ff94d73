package routes

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/handlers"
)

func registerTaskRoutes(app *fiber.App) {
	handler := handlers.NewTaskHandler()
	app.Get("/tasks", handler.GetTasks)
}
