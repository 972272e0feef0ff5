package schedule

import (
	"testing"
	"time"

	"github.com/sportspot/sportspot-api/internal/models"
)

func rule(dayGroup, timeRange string, morning bool, price int) models.PricingRule {
	return models.PricingRule{
		DayGroup:  dayGroup,
		TimeRange: timeRange,
		IsMorning: morning,
		Price:     price,
	}
}

func TestResolvePriceTieBreak(t *testing.T) {
	rules := []models.PricingRule{
		rule("saturday", "16-19", false, 900),
		rule("weekend", "16-19", false, 800),
		rule("weekday", "16-19", false, 700),
		rule("monday", "6-12", true, 400),
		rule("all", "", false, 550),
	}

	tests := []struct {
		name      string
		day       time.Weekday
		hour      int
		isMorning bool
		want      int
	}{
		{name: "exact day name wins over group", day: time.Saturday, hour: 17, isMorning: false, want: 900},
		{name: "exact day wins even outside its time range", day: time.Saturday, hour: 9, isMorning: false, want: 900},
		{name: "day group plus range", day: time.Sunday, hour: 17, isMorning: false, want: 800},
		{name: "friday counts as weekend", day: time.Friday, hour: 17, isMorning: false, want: 800},
		{name: "weekday group", day: time.Tuesday, hour: 17, isMorning: false, want: 700},
		{name: "catch-all when nothing ranges", day: time.Sunday, hour: 10, isMorning: false, want: 550},
		{name: "morning flag filters to morning rules", day: time.Monday, hour: 9, isMorning: true, want: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePrice(rules, tt.day, tt.hour, tt.isMorning); got != tt.want {
				t.Errorf("ResolvePrice(%s, %d, morning=%v) = %d, want %d",
					tt.day, tt.hour, tt.isMorning, got, tt.want)
			}
		})
	}
}

func TestResolvePriceRangeBeatsCatchAll(t *testing.T) {
	// No rule for Monday's group, but a weekend rule whose range covers the
	// hour still outranks the all-days catch-all.
	rules := []models.PricingRule{
		rule("weekend", "16-19", false, 800),
		rule("all", "", false, 550),
	}

	if got := ResolvePrice(rules, time.Monday, 17, false); got != 800 {
		t.Fatalf("ResolvePrice = %d, want the ranged rule at 800", got)
	}
	if got := ResolvePrice(rules, time.Monday, 10, false); got != 550 {
		t.Fatalf("ResolvePrice outside the range = %d, want the catch-all at 550", got)
	}
}

func TestResolvePriceDefault(t *testing.T) {
	if got := ResolvePrice(nil, time.Monday, 10, false); got != DefaultPrice {
		t.Fatalf("ResolvePrice with no rules = %d, want %d", got, DefaultPrice)
	}

	// Rules for the other morning flag never participate.
	rules := []models.PricingRule{rule("all", "6-12", true, 999)}
	if got := ResolvePrice(rules, time.Monday, 10, false); got != DefaultPrice {
		t.Fatalf("ResolvePrice with only morning rules = %d, want %d", got, DefaultPrice)
	}
}

func TestResolvePriceDeterministic(t *testing.T) {
	rules := []models.PricingRule{
		rule("weekend", "16-19", false, 800),
		rule("saturday", "16-19", false, 900),
	}

	first := ResolvePrice(rules, time.Saturday, 17, false)
	for i := 0; i < 50; i++ {
		if got := ResolvePrice(rules, time.Saturday, 17, false); got != first {
			t.Fatalf("resolution flapped: run %d got %d, first run got %d", i, got, first)
		}
	}
	if first != 900 {
		t.Fatalf("exact day rule should win regardless of slice order, got %d", first)
	}
}
