package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/repositories"
)

func TestResolveCapacityPrefersDatedOverride(t *testing.T) {
	date := amsterdamTime(2025, time.March, 3, 0)
	data := &repositories.AvailabilityData{
		Dated: []models.AvailabilityDefinition{{
			Date:  &date,
			Slots: []models.CapacitySlot{{HourStart: 9, HourEnd: 12, Capacity: 5}},
		}},
		Default: models.AvailabilityDefinition{
			Default: true,
			Slots:   []models.CapacitySlot{{HourStart: 9, HourEnd: 12, Capacity: 2}},
		},
	}

	window, err := ResolveWindow(data, amsterdamTime(2025, time.March, 3, 10), amsterdamTime(2025, time.March, 3, 11))
	if err != nil {
		t.Fatal(err)
	}
	if window.Capacity != 5 {
		t.Errorf("capacity = %d, want the dated override's 5", window.Capacity)
	}
}

func TestResolveCapacityFallsThroughPartialOverride(t *testing.T) {
	// The dated definition only covers the morning; the afternoon interval
	// must resolve against the default.
	date := amsterdamTime(2025, time.March, 3, 0)
	data := &repositories.AvailabilityData{
		Dated: []models.AvailabilityDefinition{{
			Date:  &date,
			Slots: []models.CapacitySlot{{HourStart: 9, HourEnd: 12, Capacity: 0}},
		}},
		Default: models.AvailabilityDefinition{
			Default: true,
			Slots: []models.CapacitySlot{
				{HourStart: 9, HourEnd: 12, Capacity: 2},
				{HourStart: 13, HourEnd: 17, Capacity: 3},
			},
		},
	}

	window, err := ResolveWindow(data, amsterdamTime(2025, time.March, 3, 14), amsterdamTime(2025, time.March, 3, 15))
	if err != nil {
		t.Fatal(err)
	}
	if window.Capacity != 3 {
		t.Errorf("capacity = %d, want the default's 3", window.Capacity)
	}
}

func TestResolveCapacityUncoveredIntervalIsInvariantViolation(t *testing.T) {
	data := &repositories.AvailabilityData{
		Default: models.AvailabilityDefinition{
			Default: true,
			Slots:   []models.CapacitySlot{{HourStart: 9, HourEnd: 12, Capacity: 2}},
		},
	}

	_, err := ResolveWindow(data, amsterdamTime(2025, time.March, 3, 20), amsterdamTime(2025, time.March, 3, 21))
	if apperrors.KindOf(err) != apperrors.KindInvariantViolation {
		t.Errorf("err = %v, want invariant violation", err)
	}
}

func TestCountCheckgesprekOverlaps(t *testing.T) {
	start := amsterdamTime(2025, time.March, 3, 10)
	end := amsterdamTime(2025, time.March, 3, 11)

	toekomstStart := amsterdamTime(2025, time.March, 3, 10)
	toekomstEnd := amsterdamTime(2025, time.March, 3, 11)
	appointments := []models.Appointment{
		bookedCheckgesprek(start, end),
		bookedCheckgesprek(amsterdamTime(2025, time.March, 3, 9), amsterdamTime(2025, time.March, 3, 10)),
		{
			StartTime:       &toekomstStart,
			EndTime:         &toekomstEnd,
			AppointmentType: &models.AppointmentType{Name: models.AppointmentTypeToekomstgesprek},
		},
		{AppointmentType: checkgesprekType()},
	}

	if got := countCheckgesprekOverlaps(appointments, start, end); got != 1 {
		t.Errorf("got %d overlapping Checkgesprekken, want 1", got)
	}
}

func TestValidateSlotAvailabilityRejectsFullSlot(t *testing.T) {
	start := amsterdamTime(2025, time.March, 3, 10)
	end := amsterdamTime(2025, time.March, 3, 11)
	data := singleSlotData(1, bookedCheckgesprek(start, end))

	err := validateSlotAvailability(data, start, end)
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("err = %v, want ErrSlotUnavailable", err)
	}

	if err := validateSlotAvailability(singleSlotData(1), start, end); err != nil {
		t.Errorf("empty slot should validate, got %v", err)
	}
}

func TestGetAvailabilityRequiresPermission(t *testing.T) {
	service := &AvailabilityService{repo: newFakeAvailabilityRepo(singleSlotData(1))}
	ondernemer := &models.User{RoleName: configs.RoleOndernemer}

	_, err := service.GetAvailability(context.Background(), ondernemer,
		amsterdamTime(2025, time.March, 3, 0), amsterdamTime(2025, time.March, 4, 0))
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Errorf("err = %v, want permission denied", err)
	}
}

func TestUpdateCapacityRejectsNegativeCapacity(t *testing.T) {
	service := &AvailabilityService{repo: newFakeAvailabilityRepo(singleSlotData(1))}
	adviseur := &models.User{RoleName: configs.RoleAdviseur}

	err := service.UpdateCapacity(context.Background(), adviseur, amsterdamTime(2025, time.March, 3, 0), 9, -1)
	if apperrors.KindOf(err) != apperrors.KindUserInput {
		t.Errorf("err = %v, want user input error", err)
	}
}

func TestUpdateCapacityCreatesDatedDefinitionOnFirstWrite(t *testing.T) {
	repo := newFakeAvailabilityRepo(singleSlotData(2))
	service := &AvailabilityService{repo: repo}
	date := amsterdamTime(2025, time.March, 3, 0)

	if err := service.updateCapacity(context.Background(), repo, date, 9, 4); err != nil {
		t.Fatal(err)
	}

	definition, err := repo.FindDatedByDate(context.Background(), date)
	if err != nil {
		t.Fatalf("dated definition not created: %v", err)
	}
	if definition.Default {
		t.Error("override must not be the default definition")
	}
	if len(definition.Slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(definition.Slots))
	}
	slot := definition.Slots[0]
	if slot.HourStart != 9 || slot.HourEnd != 12 {
		t.Errorf("slot hours %d-%d, want the default's 9-12", slot.HourStart, slot.HourEnd)
	}
	if slot.Capacity != 4 {
		t.Errorf("capacity = %d, want 4", slot.Capacity)
	}
}

func TestUpdateCapacityOverwritesExistingSlot(t *testing.T) {
	repo := newFakeAvailabilityRepo(singleSlotData(2))
	service := &AvailabilityService{repo: repo}
	date := amsterdamTime(2025, time.March, 3, 0)

	if err := service.updateCapacity(context.Background(), repo, date, 9, 4); err != nil {
		t.Fatal(err)
	}
	if err := service.updateCapacity(context.Background(), repo, date, 9, 1); err != nil {
		t.Fatal(err)
	}

	definition, err := repo.FindDatedByDate(context.Background(), date)
	if err != nil {
		t.Fatal(err)
	}
	if len(definition.Slots) != 1 {
		t.Fatalf("got %d slots, want the existing slot overwritten", len(definition.Slots))
	}
	if definition.Slots[0].Capacity != 1 {
		t.Errorf("capacity = %d, want 1", definition.Slots[0].Capacity)
	}
}

func TestUpdateCapacityUnknownHourStart(t *testing.T) {
	repo := newFakeAvailabilityRepo(singleSlotData(2))
	service := &AvailabilityService{repo: repo}

	err := service.updateCapacity(context.Background(), repo, amsterdamTime(2025, time.March, 3, 0), 8, 3)
	if apperrors.KindOf(err) != apperrors.KindInvariantViolation {
		t.Errorf("err = %v, want invariant violation", err)
	}
}
