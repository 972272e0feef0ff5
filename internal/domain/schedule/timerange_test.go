package schedule

import (
	"testing"
	"time"
)

func TestHourInRange(t *testing.T) {
	tests := []struct {
		name      string
		hour      int
		timeRange string
		want      bool
	}{
		{name: "inside", hour: 17, timeRange: "16-19", want: true},
		{name: "start is inclusive", hour: 16, timeRange: "16-19", want: true},
		{name: "end is exclusive", hour: 19, timeRange: "16-19", want: false},
		{name: "before", hour: 15, timeRange: "16-19", want: false},
		{name: "wrap covers late evening", hour: 23, timeRange: "22-2", want: true},
		{name: "post midnight hour stays outside wrap", hour: 1, timeRange: "22-2", want: false},
		{name: "wrap end exclusive", hour: 2, timeRange: "22-2", want: false},
		{name: "spaces tolerated", hour: 17, timeRange: " 16 - 19 ", want: true},
		{name: "missing dash", hour: 17, timeRange: "1619", want: false},
		{name: "non numeric", hour: 17, timeRange: "four-seven", want: false},
		{name: "empty", hour: 17, timeRange: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HourInRange(tt.hour, tt.timeRange); got != tt.want {
				t.Errorf("HourInRange(%d, %q) = %v, want %v", tt.hour, tt.timeRange, got, tt.want)
			}
		})
	}
}

func TestDayGroupOf(t *testing.T) {
	weekend := []time.Weekday{time.Friday, time.Saturday, time.Sunday}
	for _, d := range weekend {
		if got := DayGroupOf(d); got != DayGroupWeekend {
			t.Errorf("DayGroupOf(%s) = %q, want %q", d, got, DayGroupWeekend)
		}
	}

	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday}
	for _, d := range weekdays {
		if got := DayGroupOf(d); got != DayGroupWeekday {
			t.Errorf("DayGroupOf(%s) = %q, want %q", d, got, DayGroupWeekday)
		}
	}
}

func TestDayName(t *testing.T) {
	if got := DayName(time.Wednesday); got != "wednesday" {
		t.Errorf("DayName(Wednesday) = %q, want wednesday", got)
	}
}
