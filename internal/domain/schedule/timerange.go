package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Day-group aggregates used by pricing rules.
const (
	DayGroupWeekday = "weekday"
	DayGroupWeekend = "weekend"
	DayGroupAll     = "all"
)

// HourInRange reports whether an hour-of-day falls inside an "A-B" range.
// B smaller than A means the range wraps past midnight, handled by pushing B
// a day forward. Malformed ranges never match.
func HourInRange(hour int, timeRange string) bool {
	parts := strings.SplitN(strings.TrimSpace(timeRange), "-", 2)
	if len(parts) != 2 {
		return false
	}

	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}

	if to < from {
		to += 24
	}

	return hour >= from && hour < to
}

// DayGroupOf classifies a weekday into the pricing day group. Friday counts
// as weekend, a fixed business rule.
func DayGroupOf(day time.Weekday) string {
	switch day {
	case time.Friday, time.Saturday, time.Sunday:
		return DayGroupWeekend
	default:
		return DayGroupWeekday
	}
}

// DayName is the lowercase day name pricing rules and operating hours key on.
func DayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}
