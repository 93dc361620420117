package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNthOccurrence_ClipsToMonthLength(t *testing.T) {
	anchor := date(2024, time.January, 1)

	// dueDay=31 over Jan, Feb (leap), Mar, Apr
	assert.Equal(t, date(2024, time.January, 31), NthOccurrence(31, anchor, 0))
	assert.Equal(t, date(2024, time.February, 29), NthOccurrence(31, anchor, 1))
	assert.Equal(t, date(2024, time.March, 31), NthOccurrence(31, anchor, 2))
	assert.Equal(t, date(2024, time.April, 30), NthOccurrence(31, anchor, 3))
}

func TestNthOccurrence_NonLeapFebruary(t *testing.T) {
	anchor := date(2023, time.January, 15)
	assert.Equal(t, date(2023, time.February, 28), NthOccurrence(30, anchor, 1))
}

func TestNthOccurrence_GeneratedDayEqualsMinOfDueDayAndMonthLength(t *testing.T) {
	anchor := date(2023, time.January, 1)
	for dueDay := 1; dueDay <= 31; dueDay++ {
		for i := 0; i < 12; i++ {
			got := NthOccurrence(dueDay, anchor, i)
			last := DaysInMonth(got.Year(), got.Month())
			expected := dueDay
			if expected > last {
				expected = last
			}
			assert.Equal(t, expected, got.Day(), "dueDay=%d month=%s", dueDay, got.Month())
		}
	}
}

func TestNthOccurrence_YearRollover(t *testing.T) {
	anchor := date(2024, time.November, 5)
	assert.Equal(t, date(2025, time.January, 10), NthOccurrence(10, anchor, 2))
}

func TestDefaultAnchor(t *testing.T) {
	t.Run("stays in the current month when the due day is still ahead", func(t *testing.T) {
		now := date(2024, time.March, 5)
		anchor := DefaultAnchor(10, now)
		assert.Equal(t, date(2024, time.March, 10), NthOccurrence(10, anchor, 0))
	})

	t.Run("advances a month when the due day already passed", func(t *testing.T) {
		now := date(2024, time.March, 15)
		anchor := DefaultAnchor(10, now)
		assert.Equal(t, date(2024, time.April, 10), NthOccurrence(10, anchor, 0))
	})

	t.Run("due day equal to today stays in the current month", func(t *testing.T) {
		now := date(2024, time.March, 10)
		anchor := DefaultAnchor(10, now)
		assert.Equal(t, date(2024, time.March, 10), NthOccurrence(10, anchor, 0))
	})
}

func TestClampDueDay(t *testing.T) {
	assert.Equal(t, 1, ClampDueDay(0))
	assert.Equal(t, 1, ClampDueDay(-4))
	assert.Equal(t, 31, ClampDueDay(32))
	assert.Equal(t, 15, ClampDueDay(15))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.September))
}
