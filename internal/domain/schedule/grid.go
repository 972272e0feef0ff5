package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sportspot/sportspot-api/internal/models"
)

// SlotMinutes is the fixed booking granularity.
const SlotMinutes = 30

// BuildDaySlots walks every operating window of a day in 30-minute steps and
// emits the full slot grid with resolved prices. Windows whose end is not
// after their start are treated as running past midnight; emitted clock times
// stay on a 24h dial while the date stays the requested one. All slots start
// out available.
func BuildDaySlots(
	venueID uint,
	sportID uint,
	date string,
	day time.Weekday,
	windows []models.OperatingHours,
	rules []models.PricingRule,
) []models.Slot {

	var slots []models.Slot

	for _, w := range windows {
		start, ok := clockMinutes(w.StartTime)
		if !ok {
			continue
		}
		end, ok := clockMinutes(w.EndTime)
		if !ok {
			continue
		}
		if end <= start {
			end += 24 * 60
		}

		for cur := start; cur+SlotMinutes <= end; cur += SlotMinutes {
			hour := (cur / 60) % 24

			slots = append(slots, models.Slot{
				VenueID:   venueID,
				SportID:   sportID,
				Date:      date,
				StartTime: formatClock(cur),
				EndTime:   formatClock(cur + SlotMinutes),
				Price:     ResolvePrice(rules, day, hour, w.IsMorning),
				Available: true,
			})
		}
	}

	return slots
}

// clockMinutes parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
func clockMinutes(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
