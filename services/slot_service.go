package services

import (
	"context"
	"time"

	"ondernemercentraal.nl/pkg/clock"
	"ondernemercentraal.nl/pkg/timeslot"
	"ondernemercentraal.nl/repositories"
)

// ISlotService enumerates the bookable appointment slots. Results are
// recomputed on every call; this is a low-traffic path and freshness beats
// caching.
type ISlotService interface {
	// GetBookableSlots returns only the slots with an advisor available,
	// for the public booking view.
	GetBookableSlots(ctx context.Context, startDate, endDate time.Time) ([]timeslot.Window, error)
	// GetSlotOverview returns every generated slot with its capacity and
	// utilization, for administrative views.
	GetSlotOverview(ctx context.Context, startDate, endDate time.Time) ([]timeslot.Window, error)
}

type SlotService struct {
	repo  repositories.IAvailabilityRepository
	clock clock.Clock
}

func NewSlotService() ISlotService {
	return &SlotService{
		repo:  repositories.NewAvailabilityRepository(),
		clock: clock.NewSystem(),
	}
}

// newSlotService wires explicit dependencies (used by tests).
func newSlotService(repo repositories.IAvailabilityRepository, clk clock.Clock) *SlotService {
	return &SlotService{repo: repo, clock: clk}
}

func (s *SlotService) GetBookableSlots(ctx context.Context, startDate, endDate time.Time) ([]timeslot.Window, error) {
	windows, err := s.GetSlotOverview(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	bookable := make([]timeslot.Window, 0, len(windows))
	for _, window := range windows {
		if window.HasAdvisorAvailable() {
			bookable = append(bookable, window)
		}
	}
	return bookable, nil
}

func (s *SlotService) GetSlotOverview(ctx context.Context, startDate, endDate time.Time) ([]timeslot.Window, error) {
	data, err := s.repo.GetAvailabilityData(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.generateWindows(data, startDate, endDate)
}

// generateWindows enumerates one-hour slots for every workday in
// [startDate, endDate). Which hour ranges exist comes from the default
// definition only; dated overrides change capacity numbers, not the
// calendar. Slots that do not start strictly in the future are dropped.
func (s *SlotService) generateWindows(data *repositories.AvailabilityData, startDate, endDate time.Time) ([]timeslot.Window, error) {
	now := s.clock.Now()

	var windows []timeslot.Window
	for _, date := range timeslot.WorkdaysBetween(startDate, endDate) {
		for _, capacitySlot := range data.Default.Slots {
			for _, interval := range timeslot.HourlyIntervals(capacitySlot.HourStart, capacitySlot.HourEnd) {
				start := timeslot.At(date, interval[0])
				if !start.After(now) {
					continue
				}

				window, err := ResolveWindow(data, start, timeslot.At(date, interval[1]))
				if err != nil {
					return nil, err
				}
				windows = append(windows, window)
			}
		}
	}
	return windows, nil
}

var _ ISlotService = (*SlotService)(nil)
