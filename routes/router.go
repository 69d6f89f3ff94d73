package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/pkg/apperrors"
)

// NewApp builds the Fiber application with the boundary error handler wired
// in.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "Ondernemer Centraal",
		ErrorHandler: errorHandler,
	})
}

// SetupRoutes registers the global middleware and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(actingUserMiddleware())

	registerAppointmentSlotRoutes(app)
	registerAvailabilityRoutes(app)
	registerCaseRoutes(app)
	registerTaskRoutes(app)

	app.Use(notFoundHandler)
}

// errorHandler maps service errors onto JSON responses. User-facing kinds
// return their Dutch message verbatim; everything else is masked and logged.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		configslog.Log.Error("Onverwachte fout bij verwerken van verzoek",
			zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		message = "Er is een interne fout opgetreden."
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bron niet gevonden."})
}
