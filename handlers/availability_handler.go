package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/services"
)

// AvailabilityHandler serves the administrative capacity views.
type AvailabilityHandler struct {
	availabilityService services.IAvailabilityService
	slotService         services.ISlotService
}

func NewAvailabilityHandler() *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: services.NewAvailabilityService(),
		slotService:         services.NewSlotService(),
	}
}

// GetAvailability returns the capacity configuration plus the full slot
// overview (including full slots) for [start_date, end_date).
func (h *AvailabilityHandler) GetAvailability(c *fiber.Ctx) error {
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

	overview, err := h.availabilityService.GetAvailability(c.UserContext(), actingUser(c), startDate, endDate)
	if err != nil {
		return err
	}
	slots, err := h.slotService.GetSlotOverview(c.UserContext(), startDate, endDate)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"availability": overview, "slots": slots})
}

// UpdateCapacity sets the capacity of one hour range on one date.
func (h *AvailabilityHandler) UpdateCapacity(c *fiber.Ctx) error {
	date, err := parseDateParam(c, "date")
	if err != nil {
		return err
	}
	hourStart, err := strconv.Atoi(c.Params("hourStart"))
	if err != nil {
		return apperrors.UserInputf("Ongeldig beginuur '%s'.", c.Params("hourStart"))
	}
	newCapacity, err := strconv.Atoi(c.Query("new_capacity"))
	if err != nil {
		return apperrors.UserInputf("Ongeldige capaciteit '%s'.", c.Query("new_capacity"))
	}

	if err := h.availabilityService.UpdateCapacity(c.UserContext(), actingUser(c), date, hourStart, newCapacity); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
