package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/services"
)

// TrackHandler serves the track endpoints on a case.
type TrackHandler struct {
	trackService services.ITrackService
}

func NewTrackHandler() *TrackHandler {
	return &TrackHandler{trackService: services.NewTrackService()}
}

func (h *TrackHandler) GetTracksForCase(c *fiber.Ctx) error {
	caseID, err := parseUUIDParam(c, "caseID")
	if err != nil {
		return err
	}
	tracks, err := h.trackService.GetTracksForCase(c.UserContext(), caseID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tracks": tracks})
}

func (h *TrackHandler) GetTrack(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	track, err := h.trackService.GetTrackByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(track)
}

func (h *TrackHandler) CreateTrack(c *fiber.Ctx) error {
	caseID, err := parseUUIDParam(c, "caseID")
	if err != nil {
		return err
	}
	var input services.TrackInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.UserInput("Ongeldige aanvraag.")
	}

	track, err := h.trackService.CreateTrack(c.UserContext(), actingUser(c), caseID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(track)
}

func (h *TrackHandler) UpdateTrack(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var input services.TrackInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.UserInput("Ongeldige aanvraag.")
	}

	track, err := h.trackService.UpdateTrack(c.UserContext(), actingUser(c), id, input)
	if err != nil {
		return err
	}
	return c.JSON(track)
}
