package domain

import "time"

// PracticeZone is the fixed civil-time zone for all streak day math.
// Day boundaries are always computed at UTC+7, regardless of the host
// timezone or where the process runs.
var PracticeZone = time.FixedZone("UTC+7", 7*60*60)

// CivilDate is a calendar date with no time-of-day component.
// The zero value is not a valid date; use IsZero to detect it.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateOf returns the calendar date of t as observed in loc.
func CivilDateOf(t time.Time, loc *time.Location) CivilDate {
	y, m, d := t.In(loc).Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// PracticeDateOf returns the calendar date of t in the fixed practice zone.
func PracticeDateOf(t time.Time) CivilDate {
	return CivilDateOf(t, PracticeZone)
}

// Time returns midnight of d in loc.
func (d CivilDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n calendar days. n may be negative.
func (d CivilDate) AddDays(n int) CivilDate {
	y, m, day := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC).Date()
	return CivilDate{Year: y, Month: m, Day: day}
}

// DaysSince returns the number of calendar days from o to d,
// positive when d is after o.
func (d CivilDate) DaysSince(o CivilDate) int {
	return int(d.Time(time.UTC).Sub(o.Time(time.UTC)) / (24 * time.Hour))
}

// Equal reports whether d and o are the same calendar date.
func (d CivilDate) Equal(o CivilDate) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// Before reports whether d is an earlier calendar date than o.
func (d CivilDate) Before(o CivilDate) bool {
	return d.DaysSince(o) < 0
}

// IsZero reports whether d is the zero value.
func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

func (d CivilDate) String() string {
	return d.Time(time.UTC).Format("2006-01-02")
}
