package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refDate = time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)

func TestExtractDate_USLayout(t *testing.T) {
	d := ExtractDate("Receipt dated 03/15/2024 thanks", refDate)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_USLayoutDashes(t *testing.T) {
	d := ExtractDate("03-15-2024", refDate)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_ISOLayout(t *testing.T) {
	d := ExtractDate("date: 2024-03-15", refDate)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_TwoDigitYear(t *testing.T) {
	d := ExtractDate("03/15/24", refDate)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_FirstMatchWins(t *testing.T) {
	// Earliest position in the text, not alternative priority.
	d := ExtractDate("01/02/2023 then 2024-03-15", refDate)
	assert.Equal(t, time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_NoDate(t *testing.T) {
	d := ExtractDate("no date in here", refDate)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_MonthNameLayoutFallsBack(t *testing.T) {
	// The DD MMM YYYY shape is recognized but not resolved to a month
	// number; the reference date is returned instead.
	d := ExtractDate("15 Mar 2024", refDate)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_InvalidMonth(t *testing.T) {
	d := ExtractDate("13/45/2024 is not a date", refDate)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_NonexistentDayNotClamped(t *testing.T) {
	// April has 30 days; the combination must fail to the reference date
	// rather than normalize to May 1.
	d := ExtractDate("04/31/2024", refDate)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestExtractDate_ReturnsDateOnly(t *testing.T) {
	d := ExtractDate("nothing here", refDate)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}
