package realtime

import "encoding/json"

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Tables carried on the change feed.
const (
	TableSlots    = "slots"
	TableBookings = "bookings"
)

// Event is one row change as delivered to subscribers. New holds the row
// after the change, as JSON.
type Event struct {
	Type  EventType       `json:"event_type"`
	Table string          `json:"table"`
	New   json.RawMessage `json:"new"`
}

// Decode unmarshals the changed row into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.New, v)
}

func channelFor(table string) string {
	return "feed:" + table
}
