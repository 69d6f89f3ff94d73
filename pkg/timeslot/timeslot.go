// Package timeslot holds the pure calendar math behind slot scheduling:
// half-open interval overlap, capacity-slot containment and the enumeration
// of bookable one-hour windows. Everything here is side-effect free so the
// scheduling rules can be tested without a database.
package timeslot

import "time"

// Amsterdam is the scheduling timezone. Slot hours are interpreted and
// generated in local Amsterdam time.
var Amsterdam = mustLoadLocation("Europe/Amsterdam")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("timeslot: cannot load location " + name + ": " + err.Error())
	}
	return loc
}

// Window is one candidate appointment slot with its resolved capacity and
// current utilization. It is computed per query and never persisted.
type Window struct {
	Start       time.Time `json:"start_time"`
	End         time.Time `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Utilization int       `json:"utilization"`
}

// HasAdvisorAvailable is the sole booking gate: a window is bookable while
// its utilization stays below its capacity.
func (w Window) HasAdvisorAvailable() bool {
	return w.Utilization < w.Capacity
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// The comparison is strictly half-open: back-to-back intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CoversHours reports whether the capacity slot [hourStart, hourEnd] fully
// contains the interval [start, end), judged on Amsterdam wall-clock hours.
func CoversHours(hourStart, hourEnd int, start, end time.Time) bool {
	return hourStart <= start.In(Amsterdam).Hour() && hourEnd >= end.In(Amsterdam).Hour()
}

// WorkdaysBetween returns every calendar date in [startDate, endDate),
// excluding Saturdays and Sundays. Dates are returned at midnight Amsterdam.
func WorkdaysBetween(startDate, endDate time.Time) []time.Time {
	var dates []time.Time
	start := DayStart(startDate)
	end := DayStart(endDate)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// DayStart truncates a timestamp to midnight of its Amsterdam calendar date.
func DayStart(t time.Time) time.Time {
	local := t.In(Amsterdam)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Amsterdam)
}

// HourlyIntervals splits the range [hourStart, hourEnd] into consecutive
// one-hour pairs: (9, 12) yields (9,10), (10,11), (11,12).
func HourlyIntervals(hourStart, hourEnd int) [][2]int {
	var intervals [][2]int
	for h := hourStart + 1; h <= hourEnd; h++ {
		intervals = append(intervals, [2]int{h - 1, h})
	}
	return intervals
}

// At places the given wall-clock hour on the given date, Amsterdam time.
func At(date time.Time, hour int) time.Time {
	local := date.In(Amsterdam)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, Amsterdam)
}

