// Package dateutil provides the calendar math for meal planner week
// navigation. Weeks are ISO weeks: Monday is the first day, and a week
// is identified by its Monday formatted as YYYY-MM-DD (the week key).
package dateutil

import (
	"fmt"
	"time"

	"recipebook/internal/domain"
)

// DateLayout is the canonical YYYY-MM-DD layout used for week keys and
// stored dates.
const DateLayout = "2006-01-02"

// Parse parses an ISO date string. Plain dates (2024-01-15) and full
// RFC3339 timestamps are both accepted.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

// Format formats a date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns the Monday on or before t, truncated to midnight
// UTC. A Sunday input maps to the previous Monday, six days earlier.
func WeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday numbers Sunday as 0; shift so Monday is day 0.
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// WeekKey returns the week key for the week containing t.
func WeekKey(t time.Time) string {
	return Format(WeekStart(t))
}

// WeekKeyFromString returns the week key for the week containing the
// given ISO date string.
func WeekKeyFromString(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return WeekKey(t), nil
}

// WeekDates returns the seven dates of the week identified by weekKey,
// Monday through Sunday in order. The input is normalized to its
// Monday first, so any date within the week is accepted.
func WeekDates(weekKey string) ([]time.Time, error) {
	t, err := Parse(weekKey)
	if err != nil {
		return nil, err
	}
	monday := WeekStart(t)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates, nil
}

// PreviousWeek returns the week key seven days before weekKey.
func PreviousWeek(weekKey string) (string, error) {
	return shiftWeek(weekKey, -1)
}

// NextWeek returns the week key seven days after weekKey.
func NextWeek(weekKey string) (string, error) {
	return shiftWeek(weekKey, 1)
}

func shiftWeek(weekKey string, weeks int) (string, error) {
	t, err := Parse(weekKey)
	if err != nil {
		return "", err
	}
	return Format(WeekStart(t).AddDate(0, 0, weeks*7)), nil
}

// DayName returns the English day name for a date ("Monday").
func DayName(t time.Time) string {
	return t.Weekday().String()
}

// ShortDayName returns the three letter day name for a date ("Mon").
func ShortDayName(t time.Time) string {
	return t.Format("Mon")
}

// DayNameKey returns the lowercase day name key used in meal plan
// structures ("monday").
func DayNameKey(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return domain.DayMonday
	case time.Tuesday:
		return domain.DayTuesday
	case time.Wednesday:
		return domain.DayWednesday
	case time.Thursday:
		return domain.DayThursday
	case time.Friday:
		return domain.DayFriday
	case time.Saturday:
		return domain.DaySaturday
	default:
		return domain.DaySunday
	}
}

// DayOfWeek returns the date for a weekday within the week identified
// by weekKey.
func DayOfWeek(weekKey string, weekday time.Weekday) (time.Time, error) {
	t, err := Parse(weekKey)
	if err != nil {
		return time.Time{}, err
	}
	monday := WeekStart(t)
	offset := (int(weekday) + 6) % 7
	return monday.AddDate(0, 0, offset), nil
}

// DisplayOptions controls FormatDisplay output.
type DisplayOptions struct {
	IncludeDayName bool
	ShortMonth     bool
}

// FormatDisplay formats a date for display, e.g. "January 1, 2024" or
// "Monday, Jan 1, 2024".
func FormatDisplay(t time.Time, opts DisplayOptions) string {
	switch {
	case opts.IncludeDayName && opts.ShortMonth:
		return t.Format("Monday, Jan 2, 2006")
	case opts.IncludeDayName:
		return t.Format("Monday, January 2, 2006")
	case opts.ShortMonth:
		return t.Format("Jan 2, 2006")
	default:
		return t.Format("January 2, 2006")
	}
}
