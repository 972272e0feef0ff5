package schedule

import (
	"strings"
	"time"

	"github.com/sportspot/sportspot-api/internal/models"
)

// DefaultPrice is charged per 30-minute slot when no pricing rule matches.
// Missing pricing data never blocks a booking.
const DefaultPrice = 500

// ResolvePrice picks the single applicable price for a slot. First match
// wins, in order: exact day name, day group plus time range, any rule whose
// time range covers the hour, the all-days catch-all, then DefaultPrice.
// Rules whose morning flag disagrees with the slot's never participate.
func ResolvePrice(rules []models.PricingRule, day time.Weekday, slotHour int, isMorning bool) int {
	candidates := make([]models.PricingRule, 0, len(rules))
	for _, r := range rules {
		if r.IsMorning == isMorning {
			candidates = append(candidates, r)
		}
	}

	dayName := DayName(day)
	for _, r := range candidates {
		if strings.ToLower(r.DayGroup) == dayName {
			return r.Price
		}
	}

	group := DayGroupOf(day)
	for _, r := range candidates {
		if strings.ToLower(r.DayGroup) == group && HourInRange(slotHour, r.TimeRange) {
			return r.Price
		}
	}

	for _, r := range candidates {
		if HourInRange(slotHour, r.TimeRange) {
			return r.Price
		}
	}

	for _, r := range candidates {
		if strings.ToLower(r.DayGroup) == DayGroupAll {
			return r.Price
		}
	}

	return DefaultPrice
}
