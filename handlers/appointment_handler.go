package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/pkg/queryparams"
	"ondernemercentraal.nl/services"
)

// AppointmentHandler serves the appointment endpoints on a case.
type AppointmentHandler struct {
	appointmentService services.IAppointmentService
}

func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{appointmentService: services.NewAppointmentService()}
}

func (h *AppointmentHandler) GetAppointmentsForCase(c *fiber.Ctx) error {
	caseID, err := parseUUIDParam(c, "caseID")
	if err != nil {
		return err
	}
	params := queryparams.DefaultListParams("start_time")
	if err := c.QueryParser(&params); err != nil {
		return apperrors.UserInput("Ongeldige lijstparameters.")
	}
	params.Validate()

	result, err := h.appointmentService.GetAppointmentsForCase(c.UserContext(), caseID, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	appointment, err := h.appointmentService.GetAppointmentByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(appointment)
}

func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	caseID, err := parseUUIDParam(c, "caseID")
	if err != nil {
		return err
	}
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.UserInput("Ongeldige aanvraag.")
	}

	appointment, err := h.appointmentService.CreateAppointment(c.UserContext(), actingUser(c), caseID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.UserInput("Ongeldige aanvraag.")
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.UserContext(), actingUser(c), id, input)
	if err != nil {
		return err
	}
	return c.JSON(appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.appointmentService.DeleteAppointment(c.UserContext(), actingUser(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
