package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/services"
)

// Bookable slots are listed four weeks ahead by default.
const defaultSlotLookaheadDays = 28

// AppointmentSlotHandler serves the public slot listing that the booking
// front-end polls.
type AppointmentSlotHandler struct {
	slotService services.ISlotService
}

func NewAppointmentSlotHandler() *AppointmentSlotHandler {
	return &AppointmentSlotHandler{slotService: services.NewSlotService()}
}

// GetAppointmentSlots returns the slots that still have an advisor available
// in [start_date, end_date).
func (h *AppointmentSlotHandler) GetAppointmentSlots(c *fiber.Ctx) error {
	now := timeNow()
	startDate, err := parseDateQuery(c, "start_date", now)
	if err != nil {
		return err
	}
	endDate, err := parseDateQuery(c, "end_date", now.AddDate(0, 0, defaultSlotLookaheadDays))
	if err != nil {
		return err
	}
	if !endDate.After(startDate) {
		return apperrors.UserInput("De einddatum moet na de begindatum liggen.")
	}

	slots, err := h.slotService.GetBookableSlots(c.UserContext(), startDate, endDate)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"slots": slots})
}
