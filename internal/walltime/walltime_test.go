package walltime

import (
	"strings"
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    string
		wantErr bool
	}{
		{name: "full clock", date: "2025-06-14", clock: "18:30:00", want: "2025-06-14 18:30:00"},
		{name: "short clock gets seconds", date: "2025-06-14", clock: "18:30", want: "2025-06-14 18:30:00"},
		{name: "midnight", date: "2025-06-14", clock: "00:00:00", want: "2025-06-14 00:00:00"},
		{name: "bad date format", date: "14-06-2025", clock: "18:30:00", wantErr: true},
		{name: "bad clock format", date: "2025-06-14", clock: "6pm", wantErr: true},
		{name: "impossible clock", date: "2025-06-14", clock: "25:00:00", wantErr: true},
		{name: "impossible date", date: "2025-02-30", clock: "10:00:00", wantErr: true},
		{name: "empty inputs", date: "", clock: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combine(tt.date, tt.clock)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Combine(%q, %q) = %q, want error", tt.date, tt.clock, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Combine(%q, %q) error: %v", tt.date, tt.clock, err)
			}
			if got != tt.want {
				t.Errorf("Combine(%q, %q) = %q, want %q", tt.date, tt.clock, got, tt.want)
			}
		})
	}
}

func TestCombineOrNowFallsBack(t *testing.T) {
	got := CombineOrNow("not-a-date", "99:99:99")
	if len(got) != len(DateTimeLayout) {
		t.Fatalf("fallback %q does not match layout %q", got, DateTimeLayout)
	}
	if strings.Contains(got, "not-a-date") {
		t.Fatalf("fallback leaked the bad input: %q", got)
	}
}

func TestCombineOrNowKeepsValidInput(t *testing.T) {
	got := CombineOrNow("2025-06-14", "18:30:00")
	if got != "2025-06-14 18:30:00" {
		t.Fatalf("CombineOrNow = %q, want the combined input", got)
	}
}

func TestWeekday(t *testing.T) {
	day, err := Weekday("2025-06-14")
	if err != nil {
		t.Fatalf("Weekday error: %v", err)
	}
	if day.String() != "Saturday" {
		t.Errorf("Weekday(2025-06-14) = %s, want Saturday", day)
	}

	if _, err := Weekday("garbage"); err == nil {
		t.Error("Weekday(garbage) = nil error, want failure")
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2025-06-14", true},
		{"2025-12-31", true},
		{"2025-13-01", false},
		{"2025-02-30", false},
		{"2025-6-14", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
