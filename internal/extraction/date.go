package extraction

import (
	"strconv"
	"time"
)

// ExtractDate finds the first date-like substring in the text and converts
// it to a calendar date. On no match, a malformed value, or the month-name
// layout (recognized but not resolved to a month number), it falls back to
// the supplied reference date. It never fails outward.
func ExtractDate(text string, today time.Time) time.Time {
	fallback := dateOnly(today)

	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}

	var month, day, year int
	var err error
	switch {
	case m[1] != "":
		// MM/DD/YYYY layout
		month, day, year, err = atoi3(m[1], m[2], m[3])
	case m[4] != "":
		// YYYY/MM/DD layout
		year, month, day, err = atoi3(m[4], m[5], m[6])
	default:
		// DD MMM YYYY layout: there is no month-name table, fall back
		return fallback
	}
	if err != nil {
		return fallback
	}

	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return fallback
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range combinations (Apr 31 becomes May 1);
	// such a combination is a failed parse, not a date to clamp.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return fallback
	}

	return d
}

func atoi3(a, b, c string) (int, int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
