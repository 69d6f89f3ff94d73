package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/pkg/timeslot"
	"ondernemercentraal.nl/repositories"
)

// Slot unavailable is a user error: the UI offers slots, but another booking
// can win the race between listing and submitting.
var ErrSlotUnavailable = apperrors.UserInput("Het gekozen tijdslot heeft geen beschikbare adviseur.")

// ResolveWindow computes the capacity window for one candidate interval
// [start, end): the effective capacity (dated override before default) and
// the current utilization (overlapping Checkgesprekken).
func ResolveWindow(data *repositories.AvailabilityData, start, end time.Time) (timeslot.Window, error) {
	capacity, err := resolveCapacity(data, start, end)
	if err != nil {
		return timeslot.Window{}, err
	}
	return timeslot.Window{
		Start:       start,
		End:         end,
		Capacity:    capacity,
		Utilization: countCheckgesprekOverlaps(data.Appointments, start, end),
	}, nil
}

// capacitySources lists the definitions to consult for the given start
// instant, highest priority first. Adding another override level means
// inserting it here; no call site changes.
func capacitySources(data *repositories.AvailabilityData, start time.Time) []*models.AvailabilityDefinition {
	var sources []*models.AvailabilityDefinition
	for i := range data.Dated {
		definition := &data.Dated[i]
		if definition.Date != nil && sameCalendarDate(*definition.Date, start) {
			sources = append(sources, definition)
			break
		}
	}
	return append(sources, &data.Default)
}

// sameCalendarDate compares a stored calendar date against the Amsterdam
// calendar date of a timestamp.
func sameCalendarDate(date, instant time.Time) bool {
	local := instant.In(timeslot.Amsterdam)
	return date.Year() == local.Year() && date.Month() == local.Month() && date.Day() == local.Day()
}

func resolveCapacity(data *repositories.AvailabilityData, start, end time.Time) (int, error) {
	startHour := start.In(timeslot.Amsterdam).Hour()
	endHour := end.In(timeslot.Amsterdam).Hour()

	// A dated definition may cover only part of the default's hour ranges;
	// intervals it does not cover fall through to the default.
	for _, definition := range capacitySources(data, start) {
		if slot := definition.SlotForHours(startHour, endHour); slot != nil {
			return slot.Capacity, nil
		}
	}
	return 0, apperrors.Invariantf("no capacity slot covers %s - %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
}

// countCheckgesprekOverlaps counts booked Checkgesprekken overlapping
// [start, end). Other appointment types do not consume advisor capacity.
func countCheckgesprekOverlaps(appointments []models.Appointment, start, end time.Time) int {
	count := 0
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.StartTime == nil || appointment.EndTime == nil {
			continue
		}
		if appointment.AppointmentTypeName() != models.AppointmentTypeCheckgesprek {
			continue
		}
		if timeslot.Overlaps(*appointment.StartTime, *appointment.EndTime, start, end) {
			count++
		}
	}
	return count
}

// validateSlotAvailability is the booking-time gate: it must run against
// data read in the same transaction as the insert, otherwise two concurrent
// bookings can both pass it.
func validateSlotAvailability(data *repositories.AvailabilityData, start, end time.Time) error {
	window, err := ResolveWindow(data, start, end)
	if err != nil {
		return err
	}
	if !window.HasAdvisorAvailable() {
		return ErrSlotUnavailable
	}
	return nil
}

// AvailabilityOverview is the administrative view of the capacity
// configuration for a date range.
type AvailabilityOverview struct {
	StartDate time.Time                       `json:"start_date"`
	EndDate   time.Time                       `json:"end_date"`
	Dated     []models.AvailabilityDefinition `json:"availability_defined_dated"`
	Default   models.AvailabilityDefinition   `json:"availability_defined_default"`
}

// IAvailabilityService exposes the capacity configuration to administrative
// callers.
type IAvailabilityService interface {
	GetAvailability(ctx context.Context, user *models.User, startDate, endDate time.Time) (*AvailabilityOverview, error)
	// UpdateCapacity overrides the capacity of one hour range on one date,
	// creating the dated definition on first write.
	UpdateCapacity(ctx context.Context, user *models.User, date time.Time, hourStart, newCapacity int) error
}

type AvailabilityService struct {
	db   *gorm.DB
	repo repositories.IAvailabilityRepository
}

func NewAvailabilityService() IAvailabilityService {
	return &AvailabilityService{
		db:   configs.GetDB(),
		repo: repositories.NewAvailabilityRepository(),
	}
}

func (s *AvailabilityService) GetAvailability(ctx context.Context, user *models.User, startDate, endDate time.Time) (*AvailabilityOverview, error) {
	if err := validateUserPermission(user, configs.PermAvailabilityRead); err != nil {
		return nil, err
	}

	data, err := s.repo.GetAvailabilityData(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &AvailabilityOverview{
		StartDate: startDate,
		EndDate:   endDate,
		Dated:     data.Dated,
		Default:   data.Default,
	}, nil
}

func (s *AvailabilityService) UpdateCapacity(ctx context.Context, user *models.User, date time.Time, hourStart, newCapacity int) error {
	if err := validateUserPermission(user, configs.PermAvailabilityUpdate); err != nil {
		return err
	}
	if newCapacity < 0 {
		return apperrors.UserInput("Capaciteit kan niet negatief zijn.")
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		return s.updateCapacity(ctx, repositories.NewAvailabilityRepositoryTx(tx), date, hourStart, newCapacity)
	})

	if txErr != nil {
		configslog.Log.Error("UpdateCapacity transaction failed",
			zap.Time("date", date), zap.Int("hourStart", hourStart), zap.Error(txErr))
		return txErr
	}

	configslog.SLog.Infof("Capaciteit bijgewerkt: %s vanaf %02d:00 naar %d.", date.Format("2006-01-02"), hourStart, newCapacity)
	return nil
}

// updateCapacity applies the override through a transaction-bound repository.
func (s *AvailabilityService) updateCapacity(ctx context.Context, repo repositories.IAvailabilityRepository, date time.Time, hourStart, newCapacity int) error {
	// The hour ranges that exist are fixed by the default definition;
	// a dated row only overrides capacity numbers within them.
	data, err := repo.GetAvailabilityData(ctx, date, date)
	if err != nil {
		return err
	}
	defaultSlot := findSlotByHourStart(data.Default.Slots, hourStart)
	if defaultSlot == nil {
		return apperrors.Invariantf("no default capacity slot starts at hour %d", hourStart)
	}

	definition, err := repo.FindDatedByDate(ctx, date)
	if err != nil {
		if err != repositories.ErrNotFound {
			return err
		}
		day := date
		definition = &models.AvailabilityDefinition{Default: false, Date: &day}
		if err := repo.CreateDefinition(ctx, definition); err != nil {
			return err
		}
	}

	if target := findSlotByHourStart(definition.Slots, hourStart); target != nil {
		target.Capacity = newCapacity
	} else {
		definition.Slots = append(definition.Slots, models.CapacitySlot{
			AvailabilityDefinitionID: definition.ID,
			HourStart:                defaultSlot.HourStart,
			HourEnd:                  defaultSlot.HourEnd,
			Capacity:                 newCapacity,
		})
	}
	return repo.SaveDefinition(ctx, definition)
}

func findSlotByHourStart(slots []models.CapacitySlot, hourStart int) *models.CapacitySlot {
	for i := range slots {
		if slots[i].HourStart == hourStart {
			return &slots[i]
		}
	}
	return nil
}

var _ IAvailabilityService = (*AvailabilityService)(nil)
