package models

import (
	"strings"
	"time"
)

// Dates are stored as "2006-01-02" and clock times as "15:04" text
// columns. Both orderings are lexicographic, so range predicates work
// the same on every SQL dialect.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
	time.Sunday:    "SUNDAY",
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func ValidDayOfWeek(s string) bool {
	for _, name := range weekdayNames {
		if name == strings.ToUpper(s) {
			return true
		}
	}
	return false
}

// DayOfWeek returns the uppercase weekday name for a date, or "" if
// the date does not parse.
func DayOfWeek(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return weekdayNames[t.Weekday()]
}

// AddMinutes shifts a clock time forward. The caller guarantees the
// result stays within the same day.
func AddMinutes(clock string, minutes int) string {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return clock
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(ClockLayout)
}

// MinutesBetween returns b - a in minutes.
func MinutesBetween(a, b string) int {
	ta, errA := time.Parse(ClockLayout, a)
	tb, errB := time.Parse(ClockLayout, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Minutes())
}

func FormatDate(t time.Time) string  { return t.Format(DateLayout) }
func FormatClock(t time.Time) string { return t.Format(ClockLayout) }
