package realtime

import (
	"encoding/json"
	"testing"
)

func TestEventDecode(t *testing.T) {
	payload := `{"event_type":"update","table":"slots","new":{"id":10,"available":false}}`

	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}

	if ev.Type != EventUpdate || ev.Table != TableSlots {
		t.Fatalf("event = %+v", ev)
	}

	var row struct {
		ID        uint `json:"id"`
		Available bool `json:"available"`
	}
	if err := ev.Decode(&row); err != nil {
		t.Fatalf("decode row: %v", err)
	}
	if row.ID != 10 || row.Available {
		t.Fatalf("row = %+v", row)
	}
}

func TestChannelFor(t *testing.T) {
	if got := channelFor(TableBookings); got != "feed:bookings" {
		t.Fatalf("channelFor = %q", got)
	}
}
