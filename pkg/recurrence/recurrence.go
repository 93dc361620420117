// Package recurrence computes occurrence dates for monthly due-day rules.
// All functions are pure; callers supply the reference time.
package recurrence

import "time"

// ClampDueDay forces a due day into the valid 1..31 range.
func ClampDueDay(dueDay int) int {
	if dueDay < 1 {
		return 1
	}
	if dueDay > 31 {
		return 31
	}
	return dueDay
}

// NthOccurrence returns the i-th occurrence (0-based) of a monthly due-day
// rule anchored at anchor. The target month is the anchor month advanced by
// i, and the day is dueDay clipped to that month's length, so dueDay=31 in
// February yields the 28th (or 29th in a leap year).
func NthOccurrence(dueDay int, anchor time.Time, i int) time.Time {
	dueDay = ClampDueDay(dueDay)

	// Day 1 first, so advancing months never overflows into the next one.
	firstOfTarget := time.Date(anchor.Year(), anchor.Month()+time.Month(i), 1, 0, 0, 0, 0, anchor.Location())
	day := dueDay
	if last := DaysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

// DefaultAnchor computes the anchor to use when a recurring source carries
// no explicit start date: the first occurrence must not be in the past, so
// when today's day-of-month is already beyond the due day the anchor moves
// to the next month.
func DefaultAnchor(dueDay int, now time.Time) time.Time {
	dueDay = ClampDueDay(dueDay)
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if now.Day() > dueDay {
		anchor = anchor.AddDate(0, 1, 0)
	}
	return anchor
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
