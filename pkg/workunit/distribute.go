package workunit

import "time"

// DayAllocation is one day's share of a distributed work unit.
type DayAllocation struct {
	Date  time.Time
	Hours time.Duration
}

// Distribute spreads total hours over sequential days starting at start,
// allocating perDay hours per day and the remainder on the final day. With
// skipWeekends, Saturdays and Sundays are passed over without an allocation.
// The emitted hours always sum to total exactly. Non-positive inputs yield
// an empty result; validating them is the caller's concern.
func Distribute(total, perDay time.Duration, skipWeekends bool, start time.Time) []DayAllocation {
	if total <= 0 || perDay <= 0 {
		return nil
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	var allocations []DayAllocation
	remaining := total
	for remaining > 0 {
		if skipWeekends && isWeekend(day) {
			day = day.AddDate(0, 0, 1)
			continue
		}

		hours := perDay
		if remaining < perDay {
			hours = remaining
		}
		allocations = append(allocations, DayAllocation{Date: day, Hours: hours})
		remaining -= hours
		day = day.AddDate(0, 0, 1)
	}
	return allocations
}

func isWeekend(day time.Time) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}
