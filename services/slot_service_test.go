package services

import (
	"context"
	"testing"
	"time"

	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/clock"
	"ondernemercentraal.nl/pkg/timeslot"
	"ondernemercentraal.nl/repositories"
)

func amsterdamTime(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, timeslot.Amsterdam)
}

func checkgesprekType() *models.AppointmentType {
	return &models.AppointmentType{Name: models.AppointmentTypeCheckgesprek}
}

func bookedCheckgesprek(start, end time.Time) models.Appointment {
	return models.Appointment{
		StartTime:       &start,
		EndTime:         &end,
		AppointmentType: checkgesprekType(),
		Status:          models.AppointmentStatusOpen,
	}
}

func singleSlotData(capacity int, appointments ...models.Appointment) *repositories.AvailabilityData {
	return &repositories.AvailabilityData{
		Appointments: appointments,
		Default: models.AvailabilityDefinition{
			Default: true,
			Slots:   []models.CapacitySlot{{HourStart: 9, HourEnd: 12, Capacity: capacity}},
		},
	}
}

func TestGetBookableSlotsSkipsFullWindow(t *testing.T) {
	// Monday 2025-03-03, one slot 9-12 with capacity 1, one Checkgesprek
	// booked 10:00-11:00.
	data := singleSlotData(1,
		bookedCheckgesprek(amsterdamTime(2025, time.March, 3, 10), amsterdamTime(2025, time.March, 3, 11)))

	service := newSlotService(newFakeAvailabilityRepo(data), clock.NewFixed(amsterdamTime(2025, time.February, 24, 12)))

	slots, err := service.GetBookableSlots(context.Background(),
		amsterdamTime(2025, time.March, 3, 0), amsterdamTime(2025, time.March, 4, 0))
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d bookable slots, want 2: %+v", len(slots), slots)
	}
	wantStarts := []time.Time{amsterdamTime(2025, time.March, 3, 9), amsterdamTime(2025, time.March, 3, 11)}
	for i, want := range wantStarts {
		if !slots[i].Start.Equal(want) {
			t.Errorf("slot %d start = %s, want %s", i, slots[i].Start, want)
		}
	}
}

func TestGetSlotOverviewIncludesFullWindow(t *testing.T) {
	data := singleSlotData(1,
		bookedCheckgesprek(amsterdamTime(2025, time.March, 3, 10), amsterdamTime(2025, time.March, 3, 11)))

	service := newSlotService(newFakeAvailabilityRepo(data), clock.NewFixed(amsterdamTime(2025, time.February, 24, 12)))

	slots, err := service.GetSlotOverview(context.Background(),
		amsterdamTime(2025, time.March, 3, 0), amsterdamTime(2025, time.March, 4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}

	full := slots[1]
	if !full.Start.Equal(amsterdamTime(2025, time.March, 3, 10)) {
		t.Fatalf("unexpected slot order: %+v", slots)
	}
	if full.Utilization != 1 || full.Capacity != 1 {
		t.Errorf("full slot = capacity %d, utilization %d, want 1/1", full.Capacity, full.Utilization)
	}
	if full.HasAdvisorAvailable() {
		t.Error("full slot should not have an advisor available")
	}
}

func TestGetBookableSlotsSkipsWeekends(t *testing.T) {
	// Friday 2025-03-07 through Monday 2025-03-10.
	service := newSlotService(newFakeAvailabilityRepo(singleSlotData(1)),
		clock.NewFixed(amsterdamTime(2025, time.March, 1, 12)))

	slots, err := service.GetBookableSlots(context.Background(),
		amsterdamTime(2025, time.March, 7, 0), amsterdamTime(2025, time.March, 11, 0))
	if err != nil {
		t.Fatal(err)
	}

	for _, slot := range slots {
		if wd := slot.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend slot generated: %s", slot.Start)
		}
	}
	// Friday and Monday, three one-hour windows each.
	if len(slots) != 6 {
		t.Errorf("got %d slots, want 6", len(slots))
	}
}

func TestGetBookableSlotsDropsPastAndCurrentHour(t *testing.T) {
	// Clock mid-slot: 10:30 on the queried day. The 9:00 and 10:00 windows
	// are not strictly in the future.
	now := amsterdamTime(2025, time.March, 3, 10).Add(30 * time.Minute)
	service := newSlotService(newFakeAvailabilityRepo(singleSlotData(1)), clock.NewFixed(now))

	slots, err := service.GetBookableSlots(context.Background(),
		amsterdamTime(2025, time.March, 3, 0), amsterdamTime(2025, time.March, 4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1: %+v", len(slots), slots)
	}
	if !slots[0].Start.Equal(amsterdamTime(2025, time.March, 3, 11)) {
		t.Errorf("remaining slot start = %s, want 11:00", slots[0].Start)
	}
}

func TestGetBookableSlotsUsesDatedOverrideCapacity(t *testing.T) {
	date := amsterdamTime(2025, time.March, 3, 0)
	data := singleSlotData(2)
	data.Dated = []models.AvailabilityDefinition{{
		Date:  &date,
		Slots: []models.CapacitySlot{{HourStart: 9, HourEnd: 12, Capacity: 0}},
	}}

	service := newSlotService(newFakeAvailabilityRepo(data), clock.NewFixed(amsterdamTime(2025, time.February, 24, 12)))

	slots, err := service.GetBookableSlots(context.Background(), date, amsterdamTime(2025, time.March, 4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("capacity 0 override should leave no bookable slots, got %d", len(slots))
	}
}

func TestBackToBackBookingDoesNotConsumeAdjacentWindow(t *testing.T) {
	data := singleSlotData(1,
		bookedCheckgesprek(amsterdamTime(2025, time.March, 3, 9), amsterdamTime(2025, time.March, 3, 10)))

	service := newSlotService(newFakeAvailabilityRepo(data), clock.NewFixed(amsterdamTime(2025, time.February, 24, 12)))

	slots, err := service.GetBookableSlots(context.Background(),
		amsterdamTime(2025, time.March, 3, 0), amsterdamTime(2025, time.March, 4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if !slots[0].Start.Equal(amsterdamTime(2025, time.March, 3, 10)) {
		t.Errorf("10:00 window should be bookable, got first slot %s", slots[0].Start)
	}
}
