package timeslot

import (
	"testing"
	"time"
)

func amsterdam(t *testing.T, year int, month time.Month, day, hour int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, 0, 0, 0, Amsterdam)
}

func TestOverlaps(t *testing.T) {
	base := amsterdam(t, 2025, time.March, 3, 10)
	cases := []struct {
		name         string
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"contained", base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"partial overlap", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"back to back after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"back to back before", base.Add(-time.Hour), base, false},
		{"disjoint", base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(base, base.Add(time.Hour), tc.bStart, tc.bEnd)
			if got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCoversHours(t *testing.T) {
	start := amsterdam(t, 2025, time.March, 3, 10)
	end := amsterdam(t, 2025, time.March, 3, 11)

	if !CoversHours(9, 12, start, end) {
		t.Error("slot 9-12 should cover 10:00-11:00")
	}
	if !CoversHours(10, 11, start, end) {
		t.Error("slot 10-11 should cover 10:00-11:00 exactly")
	}
	if CoversHours(11, 13, start, end) {
		t.Error("slot 11-13 should not cover 10:00-11:00")
	}
	if CoversHours(8, 10, start, end) {
		t.Error("slot 8-10 should not cover 10:00-11:00")
	}
}

func TestWorkdaysBetween(t *testing.T) {
	// Monday 2025-03-03 through Sunday 2025-03-09.
	start := amsterdam(t, 2025, time.March, 3, 0)
	end := amsterdam(t, 2025, time.March, 10, 0)

	dates := WorkdaysBetween(start, end)
	if len(dates) != 5 {
		t.Fatalf("got %d workdays, want 5", len(dates))
	}
	for _, d := range dates {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend date %s included", d.Format("2006-01-02"))
		}
	}
	if !dates[0].Equal(start) {
		t.Errorf("first workday = %s, want %s", dates[0], start)
	}
}

func TestWorkdaysBetweenExcludesEndDate(t *testing.T) {
	start := amsterdam(t, 2025, time.March, 3, 0)
	dates := WorkdaysBetween(start, start.AddDate(0, 0, 1))
	if len(dates) != 1 || !dates[0].Equal(start) {
		t.Fatalf("got %v, want only %s", dates, start)
	}
}

func TestHourlyIntervals(t *testing.T) {
	got := HourlyIntervals(9, 12)
	want := [][2]int{{9, 10}, {10, 11}, {11, 12}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interval %d = %v, want %v", i, got[i], want[i])
		}
	}

	if got := HourlyIntervals(9, 9); got != nil {
		t.Errorf("empty range should yield no intervals, got %v", got)
	}
}

func TestDayStart(t *testing.T) {
	// 2025-03-03 01:30 Amsterdam is 2025-03-03 00:30 UTC; the Amsterdam
	// calendar date must win.
	utc := time.Date(2025, time.March, 3, 0, 30, 0, 0, time.UTC)
	got := DayStart(utc)
	want := amsterdam(t, 2025, time.March, 3, 0)
	if !got.Equal(want) {
		t.Errorf("DayStart = %s, want %s", got, want)
	}
}

func TestAt(t *testing.T) {
	date := amsterdam(t, 2025, time.March, 3, 0)
	got := At(date, 14)
	want := amsterdam(t, 2025, time.March, 3, 14)
	if !got.Equal(want) {
		t.Errorf("At = %s, want %s", got, want)
	}
}

func TestWindowHasAdvisorAvailable(t *testing.T) {
	w := Window{Capacity: 2, Utilization: 1}
	if !w.HasAdvisorAvailable() {
		t.Error("utilization below capacity should be available")
	}
	w.Utilization = 2
	if w.HasAdvisorAvailable() {
		t.Error("utilization at capacity should not be available")
	}
}
