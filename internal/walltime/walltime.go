package walltime

import (
	"fmt"
	"regexp"
	"time"
)

// The whole system runs on venue-local wall clock. Dates and clock times are
// stored and compared as strings; nothing here converts through UTC.

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// Combine joins a YYYY-MM-DD date and an HH:MM[:SS] clock into the stored
// "YYYY-MM-DD HH:MM:SS" form.
func Combine(date, clock string) (string, error) {
	if !dateRe.MatchString(date) {
		return "", fmt.Errorf("walltime: bad date %q", date)
	}
	if !clockRe.MatchString(clock) {
		return "", fmt.Errorf("walltime: bad clock %q", clock)
	}
	if len(clock) == 5 {
		clock += ":00"
	}
	combined := date + " " + clock
	if _, err := time.Parse(DateTimeLayout, combined); err != nil {
		return "", fmt.Errorf("walltime: invalid date/time %q", combined)
	}
	return combined, nil
}

// CombineOrNow falls back to the current wall clock when the inputs do not
// validate, so a malformed slot never blocks a booking outright.
func CombineOrNow(date, clock string) string {
	if s, err := Combine(date, clock); err == nil {
		return s
	}
	return Now()
}

func Now() string {
	return time.Now().Format(DateTimeLayout)
}

// Weekday resolves the day of week of a YYYY-MM-DD date.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("walltime: bad date %q", date)
	}
	return t.Weekday(), nil
}

func ValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
