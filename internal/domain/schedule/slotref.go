package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotRef identifies a slot a user is acting on. Persisted slots are referred
// to by row id; synthesized preview slots have no row yet and carry the
// venue, sport, date and start time that define them. The tag is the ID
// field: zero means synthesized.
type SlotRef struct {
	ID uint

	VenueID   uint
	SportID   uint
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM:SS
}

func (r SlotRef) Persisted() bool { return r.ID != 0 }

const previewPrefix = "tmp"

// Token renders the ref as a URL-safe handle: the decimal row id for
// persisted slots, "tmp:venue:sport:date:start" for synthesized ones.
func (r SlotRef) Token() string {
	if r.Persisted() {
		return strconv.FormatUint(uint64(r.ID), 10)
	}
	return fmt.Sprintf("%s:%d:%d:%s:%s", previewPrefix, r.VenueID, r.SportID, r.Date, r.StartTime)
}

// ParseSlotRef is the only place a slot token is ever parsed.
func ParseSlotRef(token string) (SlotRef, error) {
	if !strings.HasPrefix(token, previewPrefix+":") {
		id, err := strconv.ParseUint(token, 10, 32)
		if err != nil || id == 0 {
			return SlotRef{}, fmt.Errorf("schedule: bad slot ref %q", token)
		}
		return SlotRef{ID: uint(id)}, nil
	}

	parts := strings.SplitN(token, ":", 5)
	if len(parts) != 5 {
		return SlotRef{}, fmt.Errorf("schedule: bad preview ref %q", token)
	}
	venueID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return SlotRef{}, fmt.Errorf("schedule: bad venue in ref %q", token)
	}
	sportID, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return SlotRef{}, fmt.Errorf("schedule: bad sport in ref %q", token)
	}

	ref := SlotRef{
		VenueID:   uint(venueID),
		SportID:   uint(sportID),
		Date:      parts[3],
		StartTime: parts[4],
	}
	if _, ok := clockMinutes(ref.StartTime); !ok {
		return SlotRef{}, fmt.Errorf("schedule: bad start time in ref %q", token)
	}
	return ref, nil
}
